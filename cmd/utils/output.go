package utils

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// MessageType represents the type of output message
type MessageType int

const (
	InfoMessage MessageType = iota
	WarningMessage
	ErrorMessage
	SuccessMessage
	DebugMessage
)

// OutputMessage represents a message to be displayed
type OutputMessage struct {
	Type    MessageType
	Content string
	Writer  io.Writer // fallback writer when not in TUI mode
	NoEmoji bool      // if true, don't add emoji prefix
}

// TUIMessageMsg is a Bubble Tea message for routing output to the TUI
type TUIMessageMsg struct {
	Message OutputMessage
}

// OutputManager manages all CLI output routing
type OutputManager struct {
	mu            sync.RWMutex
	tuiProgram    *tea.Program
	inTUIMode     bool
	messageQueue  []OutputMessage
	disableEmojis bool
	stdout        io.Writer
	stderr        io.Writer
}

var outputManager = &OutputManager{stdout: os.Stdout, stderr: os.Stderr}

// SetTUIMode configures the output manager for TUI mode
func SetTUIMode(program *tea.Program) {
	outputManager.mu.Lock()
	defer outputManager.mu.Unlock()
	outputManager.tuiProgram = program
	outputManager.inTUIMode = true

	// Send any queued messages to the TUI. Send blocks until the program's
	// event loop is running, which is usually after this call returns.
	if queued := outputManager.messageQueue; program != nil && len(queued) > 0 {
		go func() {
			for _, msg := range queued {
				program.Send(TUIMessageMsg{Message: msg})
			}
		}()
	}
	outputManager.messageQueue = nil
}

// ClearTUIMode disables TUI mode
func ClearTUIMode() {
	outputManager.mu.Lock()
	defer outputManager.mu.Unlock()
	outputManager.tuiProgram = nil
	outputManager.inTUIMode = false
	outputManager.messageQueue = nil
}

// SetEmojiEnabled controls whether emojis are added to output messages globally
func SetEmojiEnabled(enabled bool) {
	outputManager.mu.Lock()
	defer outputManager.mu.Unlock()
	outputManager.disableEmojis = !enabled
}

// EmojiEnabled returns whether emojis are currently enabled
func EmojiEnabled() bool {
	outputManager.mu.RLock()
	defer outputManager.mu.RUnlock()
	return !outputManager.disableEmojis
}

// SetOutputWriters redirects direct-mode output. Nil keeps the current writer.
func SetOutputWriters(stdout, stderr io.Writer) {
	outputManager.mu.Lock()
	defer outputManager.mu.Unlock()
	if stdout != nil {
		outputManager.stdout = stdout
	}
	if stderr != nil {
		outputManager.stderr = stderr
	}
}

// sendMessage routes a message to the appropriate output destination
func sendMessage(msgType MessageType, format string, args ...interface{}) {
	sendMessageWithOptions(msgType, false, format, args...)
}

// sendMessageWithOptions routes a message with optional emoji control
func sendMessageWithOptions(msgType MessageType, noEmoji bool, format string, args ...interface{}) {
	content := fmt.Sprintf(format, args...)

	outputManager.mu.RLock()
	msg := OutputMessage{
		Type:    msgType,
		Content: content,
		Writer:  outputManager.writerFor(msgType),
		NoEmoji: noEmoji || outputManager.disableEmojis,
	}
	inTUI := outputManager.inTUIMode
	program := outputManager.tuiProgram
	outputManager.mu.RUnlock()

	if inTUI && program != nil {
		program.Send(TUIMessageMsg{Message: msg})
	} else if inTUI {
		// TUI mode but no program yet, queue the message
		outputManager.mu.Lock()
		outputManager.messageQueue = append(outputManager.messageQueue, msg)
		outputManager.mu.Unlock()
	} else {
		fmt.Fprintln(msg.Writer, FormatMessage(msg))
	}
}

// writerFor returns the appropriate writer for each message type.
// Callers hold at least the read lock.
func (m *OutputManager) writerFor(msgType MessageType) io.Writer {
	switch msgType {
	case ErrorMessage, WarningMessage, DebugMessage:
		return m.stderr
	default:
		return m.stdout
	}
}

// OutputInfo sends an informational message
func OutputInfo(format string, args ...interface{}) {
	sendMessage(InfoMessage, format, args...)
}

// OutputInfoPlain sends an informational message without emoji
func OutputInfoPlain(format string, args ...interface{}) {
	sendMessageWithOptions(InfoMessage, true, format, args...)
}

// OutputWarning sends a warning message
func OutputWarning(format string, args ...interface{}) {
	sendMessage(WarningMessage, format, args...)
}

// OutputDebug sends a debug message
func OutputDebug(format string, args ...interface{}) {
	sendMessage(DebugMessage, format, args...)
}

// OutputError sends an error message
func OutputError(format string, args ...interface{}) {
	sendMessage(ErrorMessage, format, args...)
}

// OutputSuccess sends a success message
func OutputSuccess(format string, args ...interface{}) {
	sendMessage(SuccessMessage, format, args...)
}

// FormatMessage renders a message with its emoji prefix
func FormatMessage(msg OutputMessage) string {
	if msg.NoEmoji {
		return msg.Content
	}

	var prefix string
	switch msg.Type {
	case InfoMessage:
		prefix = "ℹ️"
	case WarningMessage:
		prefix = "⚠️"
	case ErrorMessage:
		prefix = "❌"
	case SuccessMessage:
		prefix = "✅"
	case DebugMessage:
		prefix = "🐛"
	}

	return fmt.Sprintf("%s  %s", prefix, msg.Content)
}
