package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Clock"
	AppID             = "com.github.tartampluch.go-clock"
	BinaryName        = "go-clock"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	IconFile          = "Icon.png"
	ConfigFileName    = "clock.yaml"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and rendered snapshots.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	CmdSnapshot = "snapshot"
	CmdServe    = "serve"

	FlagVersion = "version"
	FlagDebug   = "debug"
	FlagConfig  = "config"
	FlagOutput  = "output"
	FlagSize    = "size"
	FlagDigital = "digital"
	FlagPort    = "port"

	FlagShortOutput = "o"

	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescConfig   = "Path to a YAML style file"
	FlagDescOutput   = "Destination PNG file"
	FlagDescSize     = "Edge length of the square image in pixels (0 uses the style file)"
	FlagDescDigital  = "Render the digital readout instead of the dial"
	FlagDescPort     = "Port for the face server (empty uses the style file)"
	DescRoot         = "Analog and digital desktop clock"
	DescSnapshot     = "Render the current clock face to a PNG file"
	DescServe        = "Serve the live clock face as PNG over HTTP"
	DefaultOutput    = "clock.png"
	MsgVersionOutput = "%s version %s (%s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Refresh Loop
// -----------------------------------------------------------------------------

const (
	// RefreshInterval is the delay between the end of one frame and the next.
	RefreshInterval = 1000 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Clock Face Geometry
// -----------------------------------------------------------------------------

// All ratios are fractions of the square edge length.
const (
	FullAngle        = 360
	RightAngle       = 90
	HourMarkAngle    = 15
	TickStep         = 6
	DegreesPerHour   = 30
	DegreesPerMinute = 6
	DegreesPerSecond = 6
	HoursOnDial      = 12

	TickOuterInset = 0.01
	TickInnerInset = 0.05
	TickStrokeRate = 0.010

	AlphaFull   uint8 = 255
	AlphaCustom uint8 = 140

	NumeralInset    = 0.14
	NumeralFontRate = 0.1

	// Hand tips sit at radius minus the inset: hour shortest, second longest.
	HourHandInset   = 0.28
	MinuteHandInset = 0.25
	SecondHandInset = 0.17

	HourHandStroke   = 0.015
	MinuteHandStroke = 0.012
	SecondHandStroke = 0.0065

	HubRadius = 0.0185
	HubStroke = 0.014

	DigitalFontRate  = 0.2
	DigitalSuffixRel = 0.3

	SuffixAM = "AM"
	SuffixPM = "PM"

	FormatTwoDigits = "%02d"
	FormatDigital   = "%02d:%02d:%02d"
	LabelTwelve     = "12"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultLanguage     = "en"
	DefaultWindowSize   = 400
	DefaultSnapshotSize = 512
	DefaultPort         = "18081"
	DefaultShowAnalog   = true
	DefaultFontSize     = 16

	// Colors (#RRGGBB[AA] or SVG names).
	ColorBlack = "#000000"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle    = "win_title"
	TKeyMenuView    = "menu_view"
	TKeyMenuAnalog  = "menu_analog"
	TKeyMenuDigital = "menu_digital"
	TKeyMenuShow    = "menu_show"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "1"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
	MinPort            = 1
	MaxPort            = 65535
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeImagePNG = "image/png"
	MimeNoSniff  = "nosniff"
	CacheControl = "no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`

	// FrameName is the resource name handed to http.ServeContent.
	FrameName = "clock.png"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrClockMissing     = "internal error: time source is not initialized"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number"
	ErrPortRange        = "server port must be between 1 and 65535"
	ErrConfigRead       = "failed to read style file"
	ErrConfigParse      = "failed to parse style file"
	ErrColorParse       = "invalid color value"
	ErrSizeInvalid      = "size must be positive"
	ErrFontParse        = "failed to parse bundled font"
	ErrFontFace         = "failed to create font face"
	ErrPNGEncode        = "failed to encode PNG"
	ErrSnapshotWrite    = "failed to write snapshot"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrConfigDir        = "could not determine user config dir"
	ErrCreateDir        = "could not create app directory"
	ErrAppFailed        = "application failed unexpectedly"
	ErrFrameRender      = "failed to render frame"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
	ErrIconRender       = "failed to render application icon"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Clock face initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop       = "Application stopped gracefully"
	MsgAppStarting   = "Starting application"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgFrameRendered = "Clock face frame rendered"
	MsgCacheUpdated  = "Frame cache updated"
	MsgModeChanged   = "Display mode changed"
	MsgStyleChanged  = "Clock style changed"
	MsgRendererClose = "Refresh loop stopped"
	MsgFrameSkipped  = "Degenerate viewport, frame skipped"
	MsgSnapshotSaved = "Snapshot written"
	MsgConfigLoaded  = "Style file loaded"
	MsgConfigMissing = "Style file not found, using defaults"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyWidth     = "width"
	LogKeyHeight    = "height"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyPath      = "path"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "build_date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompRenderer = "renderer"
	CompServer   = "server"
	CompConfig   = "config"
	CompMain     = "main"
	CompI18n     = "i18n"
)
