// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"tessera.dev/tessera/base/errors"
	"tessera.dev/tessera/base/iox/jsonx"
	"tessera.dev/tessera/base/iox/tomlx"
	"tessera.dev/tessera/base/iox/yamlx"
	"tessera.dev/tessera/base/logx"
	"tessera.dev/tessera/events"
)

// AllSettings is a global slice containing all of the [Settings] used
// by the framework. It contains the base Tessera settings by default
// and can be extended by apps with their own settings.
var AllSettings = []Settings{AppSettings, DebugSettings}

// The in-memory defaults are live even when no app ever loads settings
// from disk; [LoadAllSettings] overwrites them with saved values.
func init() {
	for _, se := range AllSettings {
		se.Defaults()
	}
}

// Settings is the interface that describes the functionality common to
// all settings data types.
type Settings interface {

	// Label returns the label text for the settings.
	Label() string

	// Filename returns the full filename/filepath at which the
	// settings are stored.
	Filename() string

	// Defaults sets the default values for all of the settings.
	Defaults()

	// Apply does anything necessary to apply the settings.
	Apply()
}

// SettingsOpener is an optional additional interface that [Settings]
// can satisfy to customize the behavior of [OpenSettings].
type SettingsOpener interface {
	Settings

	// Open opens the settings.
	Open() error
}

// SettingsSaver is an optional additional interface that [Settings]
// can satisfy to customize the behavior of [SaveSettings].
type SettingsSaver interface {
	Settings

	// Save saves the settings.
	Save() error
}

// SettingsBase contains base settings logic that other settings data
// types can extend.
type SettingsBase struct {

	// Name is the name of the settings.
	Name string `json:"-" toml:"-" yaml:"-"`

	// File is the filename/filepath at which the settings are stored,
	// relative to [DataDir] unless absolute.
	File string `json:"-" toml:"-" yaml:"-"`
}

// Label returns the label text for the settings.
func (sb *SettingsBase) Label() string {
	return sb.Name
}

// Filename returns the full filename/filepath at which the settings
// are stored.
func (sb *SettingsBase) Filename() string {
	if filepath.IsAbs(sb.File) {
		return sb.File
	}
	return filepath.Join(DataDir(), sb.File)
}

// Defaults does nothing by default and can be extended by other
// settings data types.
func (sb *SettingsBase) Defaults() {}

// Apply does nothing by default and can be extended by other settings
// data types.
func (sb *SettingsBase) Apply() {}

// DataDir returns the directory where settings files are stored:
// the user's config directory, or the working directory if that is
// not available.
func DataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return dir
}

// OpenSettings opens the given settings from their
// [Settings.Filename], decoding per the file extension: .json and
// .yaml/.yml as those formats, anything else as TOML. If the settings
// satisfy the [SettingsOpener] interface, [SettingsOpener.Open] is
// used instead.
func OpenSettings(se Settings) error {
	if so, ok := se.(SettingsOpener); ok {
		return so.Open()
	}
	fnm := se.Filename()
	switch filepath.Ext(fnm) {
	case ".json":
		return jsonx.Open(se, fnm)
	case ".yaml", ".yml":
		return yamlx.Open(se, fnm)
	}
	return tomlx.Open(se, fnm)
}

// SaveSettings saves the given settings to their [Settings.Filename],
// encoding per the file extension as in [OpenSettings]. If the
// settings satisfy the [SettingsSaver] interface, [SettingsSaver.Save]
// is used instead.
func SaveSettings(se Settings) error {
	if ss, ok := se.(SettingsSaver); ok {
		return ss.Save()
	}
	fnm := se.Filename()
	if err := os.MkdirAll(filepath.Dir(fnm), 0750); err != nil {
		return err
	}
	switch filepath.Ext(fnm) {
	case ".json":
		return jsonx.SaveIndent(se, fnm)
	case ".yaml", ".yml":
		return yamlx.Save(se, fnm)
	}
	return tomlx.Save(se, fnm)
}

// ResetSettings resets the given settings to their default values,
// removing the saved file.
func ResetSettings(se Settings) error {
	err := os.Remove(se.Filename())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	se.Defaults()
	se.Apply()
	return nil
}

// LoadSettings sets the defaults of, opens, and applies the given
// settings. It is okay for the settings to not be saved yet; the
// defaults apply in that case.
func LoadSettings(se Settings) error {
	se.Defaults()
	err := OpenSettings(se)
	// always apply, so at least the defaults take effect
	se.Apply()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadAllSettings sets the defaults of, opens, and applies
// [AllSettings].
func LoadAllSettings() error {
	errs := []error{}
	for _, se := range AllSettings {
		if err := LoadSettings(se); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SaveAllSettings saves [AllSettings].
func SaveAllSettings() error {
	errs := []error{}
	for _, se := range AllSettings {
		if err := SaveSettings(se); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WatchSettings watches the file of the given settings and reloads and
// reapplies them whenever it changes, sending [events.SettingsChanged]
// to the given scene after each reload. It returns a function that
// stops the watching, and an error if the watch could not be
// established.
func WatchSettings(sc *Scene, se Settings) (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(se.Filename())); err != nil {
		w.Close()
		return nil, err
	}
	fnm := se.Filename()
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != fnm || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				if err := OpenSettings(se); err != nil {
					slog.Error("core.WatchSettings: error reloading settings", "file", fnm, "err", err)
					continue
				}
				se.Apply()
				sc.Send(events.SettingsChanged)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("core.WatchSettings: watch error", "file", fnm, "err", err)
			}
		}
	}()
	return func() { w.Close() }, nil
}

// AppSettings are the currently active Tessera framework settings.
var AppSettings = &SettingsData{
	SettingsBase: SettingsBase{
		Name: "App",
		File: filepath.Join("Tessera", "settings.toml"),
	},
}

// SettingsData is the data type for the global Tessera framework
// settings.
type SettingsData struct { //types:add -setters
	SettingsBase

	// CollapseDuration is how long the collapse and expand transitions
	// of a [Panel] animate for. Zero disables animation: transitions
	// settle synchronously.
	CollapseDuration time.Duration

	// FloatHoverDelay is how long a floated collapsed [Panel] stays up
	// after the pointer leaves it before it slides back out.
	FloatHoverDelay time.Duration
}

func (sd *SettingsData) Defaults() {
	sd.CollapseDuration = 200 * time.Millisecond
	sd.FloatHoverDelay = 500 * time.Millisecond
}

// DebugSettings are the currently active debugging settings.
var DebugSettings = &DebugSettingsData{
	SettingsBase: SettingsBase{
		Name: "Debug",
		File: filepath.Join("Tessera", "debug-settings.toml"),
	},
}

// DebugSettingsData is the data type for the global debugging
// settings.
type DebugSettingsData struct { //types:add -setters
	SettingsBase

	// Print a trace of updates that trigger re-rendering.
	UpdateTrace bool

	// Print a trace of layout passes and parked layout requests.
	LayoutTrace bool

	// Print a trace of events as they are sent to components.
	EventTrace bool
}

// Apply raises the user logging level to debug whenever any trace is
// enabled, so the traces come with the surrounding log context.
func (db *DebugSettingsData) Apply() {
	if db.UpdateTrace || db.LayoutTrace || db.EventTrace {
		logx.UserLevel = slog.LevelDebug
	}
}
