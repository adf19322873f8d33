package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/jonboulle/clockwork"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

// ClockApp encapsulates the window, menus and the clock face.
type ClockApp struct {
	App        fyne.App
	Window     fyne.Window
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
	Ctx        context.Context

	Settings config.File
	Clock    clockwork.Clock // Injected clock for testability
	Face     *ClockWidget

	Menu        *fyne.MainMenu
	AnalogItem  *fyne.MenuItem
	DigitalItem *fyne.MenuItem

	Tray            desktop.App
	TrayMenu        *fyne.Menu
	TrayShowItem    *fyne.MenuItem
	TrayAnalogItem  *fyne.MenuItem
	TrayDigitalItem *fyne.MenuItem

	SupportedLanguages []string
}

// NewClockApp constructs the application and wires dependencies.
func NewClockApp(a fyne.App, ctx context.Context, settings config.File, style engine.Style, clk clockwork.Clock) *ClockApp {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	face := NewClockWidget(clk, style, settings.Analog())

	return &ClockApp{
		App:                a,
		Ctx:                ctx,
		Settings:           settings,
		Clock:              clk,
		Face:               face,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run builds the UI and blocks in the Fyne event loop.
func (app *ClockApp) Run() {
	app.SetupI18n()
	app.BuildWindow()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	app.Window.Show()
	app.App.Run()
}

// BuildWindow creates the main window, its menu and icon.
func (app *ClockApp) BuildWindow() {
	if icon, err := renderIcon(app.Face.Renderer.Style(), app.Clock); err == nil {
		app.App.SetIcon(icon)
	} else {
		slog.Warn(config.ErrIconRender,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.SetContent(container.New(NewSquareLayout(theme.Padding()), app.Face))

	size := float32(app.Settings.WindowSize)
	w.Resize(fyne.NewSize(size, size))
	w.SetOnClosed(app.Shutdown)
	app.Window = w

	app.setupMenu()
}

// setupMenu builds the View menu with the two mutually exclusive modes.
func (app *ClockApp) setupMenu() {
	app.AnalogItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuAnalog), func() {
		app.SetShowAnalog(true)
	})
	app.DigitalItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuDigital), func() {
		app.SetShowAnalog(false)
	})

	app.Menu = fyne.NewMainMenu(
		fyne.NewMenu(app.GetMsg(config.TKeyMenuView), app.AnalogItem, app.DigitalItem),
	)
	app.refreshMenu()

	if app.Window != nil {
		app.Window.SetMainMenu(app.Menu)
	}
}

// setupTrayMenu mirrors the View menu in the system tray, plus an entry that
// brings the window back.
func (app *ClockApp) setupTrayMenu() {
	app.TrayShowItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuShow), func() {
		if app.Window != nil {
			app.Window.Show()
			app.Window.RequestFocus()
		}
	})
	app.TrayAnalogItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuAnalog), func() {
		app.SetShowAnalog(true)
	})
	app.TrayDigitalItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuDigital), func() {
		app.SetShowAnalog(false)
	})

	app.TrayMenu = fyne.NewMenu(config.AppName,
		app.TrayShowItem,
		fyne.NewMenuItemSeparator(),
		app.TrayAnalogItem,
		app.TrayDigitalItem,
	)
	app.refreshMenu()

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.TrayMenu)
	}
}

// SetShowAnalog switches the face and keeps the menu check marks in sync.
func (app *ClockApp) SetShowAnalog(show bool) {
	app.Face.SetShowAnalog(show)
	slog.Info(config.MsgModeChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyMode, app.Face.Renderer.Mode().String())
	app.refreshMenu()
}

// refreshMenu updates check marks and localized labels in the window and tray menus.
func (app *ClockApp) refreshMenu() {
	analog := app.Face.ShowAnalog()

	if app.Menu != nil {
		app.AnalogItem.Checked = analog
		app.DigitalItem.Checked = !analog
		app.AnalogItem.Label = app.GetMsg(config.TKeyMenuAnalog)
		app.DigitalItem.Label = app.GetMsg(config.TKeyMenuDigital)
		app.Menu.Refresh()
	}

	if app.TrayMenu != nil {
		app.TrayAnalogItem.Checked = analog
		app.TrayDigitalItem.Checked = !analog
		app.TrayShowItem.Label = app.GetMsg(config.TKeyMenuShow)
		app.TrayAnalogItem.Label = app.GetMsg(config.TKeyMenuAnalog)
		app.TrayDigitalItem.Label = app.GetMsg(config.TKeyMenuDigital)
		app.TrayMenu.Refresh()
	}
}

// Shutdown stops the refresh loop so no redraw targets a closed window.
func (app *ClockApp) Shutdown() {
	app.Face.Close()
}
