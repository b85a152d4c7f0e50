package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
)

const (
	DefaultAppPackage = "im.status.ethereum"

	GethLogFile     = "geth.log"
	RequestsLogFile = "api.log"

	StatusPassed = "passed"
	StatusFailed = "failed"

	AlertMessageID = "android:id/message"
)

type ConnectionType int

// Appium network connection bitmask values.
const (
	ConnectionNone         ConnectionType = 0
	ConnectionAirplaneMode ConnectionType = 1
	ConnectionWiFiOnly     ConnectionType = 2
	ConnectionDataOnly     ConnectionType = 4
	ConnectionAllNetworkOn ConnectionType = 6
)

var (
	pullRequestBuild = regexp.MustCompile(`pr\d{5}`)
	numberedBuild    = regexp.MustCompile(`\d{5}\.apk`)
)

// AppDataDir returns the download directory the app writes its logs into.
// Pull request and numbered builds install under the ".pr" package.
func AppDataDir(appPackage, apk string) string {
	if appPackage == "" {
		appPackage = DefaultAppPackage
	}
	if pullRequestBuild.MatchString(apk) || numberedBuild.MatchString(apk) {
		appPackage += ".pr"
	}
	return fmt.Sprintf("/storage/emulated/0/Android/data/%s/files/Download/", appPackage)
}

func GethLogName(testName string, ordinal int) string {
	return fmt.Sprintf("%s_geth%d.log", testName, ordinal)
}

func RequestsLogName(testName string, ordinal int) string {
	return fmt.Sprintf("%s_requests%d.log", testName, ordinal)
}

func DeviceLabel(ordinal int) string {
	return fmt.Sprintf("Device %d", ordinal)
}

type statusHook struct {
	Action    string          `json:"action"`
	Arguments statusHookValue `json:"arguments"`
}

type statusHookValue struct {
	Status string `json:"status"`
	Remark string `json:"remark"`
}

// StatusHookScript builds the vendor script that sets a session's final status.
func StatusHookScript(ordinal int, status string) string {
	payload, _ := json.Marshal(statusHook{
		Action: "setTestStatus",
		Arguments: statusHookValue{
			Status: status,
			Remark: DeviceLabel(ordinal),
		},
	})
	return "lambda-hook: " + string(payload)
}

func TestCaseStartScript(testName string) string {
	return "lambda-testCase-start=" + testName
}
