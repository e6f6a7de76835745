// Package main provides a text-to-speech plugin.
// It speaks locked phrases aloud via the platform speech engine.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Request represents the input from the plugin executor.
type Request struct {
	Action  string          `json:"action"`
	Gesture string          `json:"gesture"`
	Phrase  string          `json:"phrase"`
	Config  json.RawMessage `json:"config"`
	Params  json.RawMessage `json:"params"`
}

// Response represents the output to the plugin executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// SpeechConfig defines optional settings for the speech engine.
type SpeechConfig struct {
	Voice string `json:"voice"`
	Rate  int    `json:"rate"` // words per minute, 0 means engine default
}

func main() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	switch req.Action {
	case "speak":
		if err := handleSpeak(&req); err != nil {
			writeErrorResponse(fmt.Sprintf("action %s failed: %v", req.Action, err))
			return
		}
	default:
		writeErrorResponse(fmt.Sprintf("unknown action: %s", req.Action))
		return
	}

	writeSuccessResponse()
}

// handleSpeak speaks the phrase from the request.
func handleSpeak(req *Request) error {
	phrase := strings.TrimSpace(req.Phrase)
	if phrase == "" {
		return fmt.Errorf("phrase is required")
	}

	var cfg SpeechConfig
	if len(req.Config) > 0 {
		if err := json.Unmarshal(req.Config, &cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cmd, err := buildSpeechCommand(phrase, cfg)
	if err != nil {
		return err
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, string(output))
	}
	return nil
}

// buildSpeechCommand selects the platform speech engine.
// macOS uses the built-in say command; Linux uses espeak.
func buildSpeechCommand(phrase string, cfg SpeechConfig) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		args := []string{}
		if cfg.Voice != "" {
			args = append(args, "-v", cfg.Voice)
		}
		if cfg.Rate > 0 {
			args = append(args, "-r", fmt.Sprintf("%d", cfg.Rate))
		}
		args = append(args, phrase)
		return exec.Command("say", args...), nil
	case "linux":
		args := []string{}
		if cfg.Voice != "" {
			args = append(args, "-v", cfg.Voice)
		}
		if cfg.Rate > 0 {
			args = append(args, "-s", fmt.Sprintf("%d", cfg.Rate))
		}
		args = append(args, phrase)
		return exec.Command("espeak", args...), nil
	default:
		return nil, fmt.Errorf("no speech engine for %s", runtime.GOOS)
	}
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(errMsg string) {
	resp := Response{
		Success: false,
		Error:   errMsg,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse() {
	resp := Response{
		Success: true,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}
