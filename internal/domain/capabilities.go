package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type DeviceKind string

const (
	DeviceKindEmulator   DeviceKind = "emulator"
	DeviceKindRealDevice DeviceKind = "real"

	DefaultEmulatorName    = "Pixel 6"
	DefaultRealDeviceName  = "Pixel 8"
	DefaultPlatformVersion = 14
	DefaultAppiumVersion   = "2.1.3"
	DefaultIdleTimeout     = 1000
)

func (k DeviceKind) Valid() bool {
	switch k {
	case DeviceKindEmulator, DeviceKindRealDevice:
		return true
	default:
		return false
	}
}

// Capabilities is the nested payload sent on session creation. Each field is
// a vendor namespace.
type Capabilities struct {
	LT     *LTOptions     `json:"lt:options,omitempty"`
	Appium *AppiumOptions `json:"appium:options,omitempty"`
}

type LTOptions struct {
	W3C             bool   `json:"w3c"`
	PlatformName    string `json:"platformName"`
	DeviceName      string `json:"deviceName"`
	AppiumVersion   string `json:"appiumVersion,omitempty"`
	PlatformVersion string `json:"platformVersion"`
	App             string `json:"app"`
	DeviceLog       bool   `json:"devicelog"`
	Visual          bool   `json:"visual"`
	Video           bool   `json:"video"`
	Build           string `json:"build"`
	Name            string `json:"name"`
	IdleTimeout     int    `json:"idleTimeout"`
	IsRealMobile    bool   `json:"isRealMobile,omitempty"`
}

type AppiumOptions struct {
	AutomationName string `json:"automationName"`
	HideKeyboard   bool   `json:"hideKeyboard"`
}

// DeviceSpec describes the pool a group asks for.
type DeviceSpec struct {
	Kind            DeviceKind
	Quantity        int
	PlatformVersion int
	DeviceName      string
	AppURL          string
	Build           string
	Name            string
}

func (s DeviceSpec) Validate() error {
	if s.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", s.Quantity)
	}
	if s.Kind != "" && !s.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedDeviceKind, s.Kind)
	}
	if strings.TrimSpace(s.AppURL) == "" {
		return fmt.Errorf("app url is required")
	}
	return nil
}

func (s DeviceSpec) Capabilities() (Capabilities, error) {
	switch s.Kind {
	case "", DeviceKindEmulator:
		return EmulatorCapabilities(s), nil
	case DeviceKindRealDevice:
		return RealDeviceCapabilities(s), nil
	default:
		return Capabilities{}, fmt.Errorf("%w: %q", ErrUnsupportedDeviceKind, s.Kind)
	}
}

func EmulatorCapabilities(spec DeviceSpec) Capabilities {
	version := spec.PlatformVersion
	if version == 0 {
		version = DefaultPlatformVersion
	}
	name := spec.DeviceName
	if name == "" {
		name = DefaultEmulatorName
	}

	return Capabilities{
		LT: &LTOptions{
			W3C:             true,
			PlatformName:    "android",
			DeviceName:      name,
			AppiumVersion:   DefaultAppiumVersion,
			PlatformVersion: strconv.Itoa(version),
			App:             spec.AppURL,
			DeviceLog:       true,
			Visual:          true,
			Video:           true,
			Build:           spec.Build,
			Name:            spec.Name,
			IdleTimeout:     DefaultIdleTimeout,
		},
		Appium: &AppiumOptions{
			AutomationName: "UiAutomator2",
			HideKeyboard:   true,
		},
	}
}

func RealDeviceCapabilities(spec DeviceSpec) Capabilities {
	name := spec.DeviceName
	if name == "" {
		name = DefaultRealDeviceName
	}

	return Capabilities{
		LT: &LTOptions{
			W3C:             true,
			PlatformName:    "android",
			DeviceName:      name,
			PlatformVersion: strconv.Itoa(DefaultPlatformVersion),
			App:             spec.AppURL,
			DeviceLog:       true,
			Visual:          true,
			Video:           true,
			Build:           spec.Build,
			Name:            spec.Name,
			IdleTimeout:     DefaultIdleTimeout,
			IsRealMobile:    true,
		},
	}
}

func (c Capabilities) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
