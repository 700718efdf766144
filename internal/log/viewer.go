package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorWhite   = "\033[37m"
)

// Entry is one decoded JSON log record.
type Entry map[string]interface{}

// Viewer prints the JSON records of every *.log file in a folder in a
// compact form, optionally keeping only those containing Filter.
type Viewer struct {
	Dir      string
	Filter   string
	UseColor bool
}

func (v *Viewer) paint(color, s string) string {
	if !v.UseColor {
		return s
	}
	return color + s + colorReset
}

func formatTimestamp(timestamp string) string {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format("06-01-02 15:04:05.000000")
}

// FormatEntry renders a record as "time LEVEL msg" followed by one
// indented line per remaining field, in key order.
func (v *Viewer) FormatEntry(entry Entry) string {
	timestamp, _ := entry["time"].(string)
	level, _ := entry["level"].(string)
	msg, _ := entry["msg"].(string)

	level = strings.ToUpper(level)
	levelColor := colorWhite
	switch level {
	case "DEBUG":
		levelColor = colorBlue
	case "INFO":
		levelColor = colorGreen
	case "WARN":
		levelColor = colorYellow
	case "ERROR":
		levelColor = colorRed
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s",
		v.paint(colorMagenta, formatTimestamp(timestamp)),
		v.paint(levelColor, fmt.Sprintf("%-5s", level)),
		msg)

	keys := make([]string, 0, len(entry))
	for key := range entry {
		if key != "time" && key != "level" && key != "msg" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&sb, "\n    %s %v", v.paint(colorCyan, key+":"), entry[key])
	}
	return sb.String()
}

// Print writes the matching records of every log file to w, file by file in
// name order, and returns how many were printed.
func (v *Viewer) Print(w io.Writer) (int, error) {
	files, err := filepath.Glob(filepath.Join(v.Dir, "*.log"))
	if err != nil {
		return 0, fmt.Errorf("error reading log directory: %w", err)
	}
	sort.Strings(files)

	printed := 0
	for _, path := range files {
		n, err := v.printFile(w, path)
		printed += n
		if err != nil {
			return printed, err
		}
	}
	return printed, nil
}

func (v *Viewer) printFile(w io.Writer, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("error opening %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	filter := strings.ToLower(v.Filter)
	printed := 0
	// Records are as long as the command lines they carry.
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return printed, fmt.Errorf("error reading %s: %w", filepath.Base(path), err)
		}

		var entry Entry
		if len(line) > 0 && json.Unmarshal(line, &entry) == nil {
			formatted := v.FormatEntry(entry)
			if filter == "" || strings.Contains(strings.ToLower(formatted), filter) {
				fmt.Fprintln(w, formatted)
				printed++
			}
		}

		if err != nil {
			return printed, nil
		}
	}
}
