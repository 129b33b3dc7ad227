package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Quick manual smoke run against a locally running server:
//
//	go run scripts/smoke_api.go
//
// Registers a throwaway user, logs in, then walks the data endpoints.

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func request(method, path, token string, payload interface{}) (map[string]interface{}, int) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			color.Red("marshal payload: %v", err)
			os.Exit(1)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		color.Red("build request: %v", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		color.Red("%s %s failed: %v", method, path, err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	_ = json.Unmarshal(raw, &parsed)
	return parsed, resp.StatusCode
}

func step(name string, status int, body map[string]interface{}) {
	if status >= 200 && status < 300 {
		color.Green("OK  %s (%d)", name, status)
	} else {
		color.Red("ERR %s (%d)", name, status)
	}
	prettyPrint(body)
}

func main() {
	phone := fmt.Sprintf("9%09d", os.Getpid())

	body, status := request("POST", "/auth/register", "", map[string]interface{}{
		"name":             "Smoke Test Farmer",
		"phone":            phone,
		"aadhaar":          "123412341234",
		"pincode":          "680001",
		"district":         "Thrissur",
		"password":         "secret123",
		"confirm_password": "secret123",
	})
	step("register", status, body)

	body, status = request("POST", "/auth/login", "", map[string]interface{}{
		"phone":    phone,
		"password": "secret123",
	})
	step("login", status, body)

	data, _ := body["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	if token == "" {
		color.Red("no token in login response, aborting")
		os.Exit(1)
	}

	body, status = request("GET", "/auth/profile", token, nil)
	step("profile", status, body)

	body, status = request("GET", "/weather/Thrissur", token, nil)
	step("weather", status, body)

	body, status = request("GET", "/market-prices", token, nil)
	step("market-prices", status, body)

	body, status = request("POST", "/farm-data", token, map[string]interface{}{
		"crop_type":     "rice",
		"planting_date": "2026-06-01",
		"area_acres":    2.5,
	})
	step("farm-data add", status, body)

	body, status = request("GET", "/dashboard", token, nil)
	step("dashboard", status, body)

	body, status = request("POST", "/chat", token, map[string]interface{}{
		"message": "My paddy leaves have brown spots, is it a disease?",
		"lang":    "en",
	})
	step("chat", status, body)

	body, status = request("GET", "/chat-history", token, nil)
	step("chat-history", status, body)

	color.Cyan("Smoke run complete for %s", phone)
}
