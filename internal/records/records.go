// Package records keeps the log of finished and abandoned work sessions and
// persists it as a single JSON object file.
package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sadopc/pomo/internal/clock"
)

// KeyLayout formats the creation instant used as a record key.
const KeyLayout = "2006-01-02T15:04:05.000000"

const (
	dateLayout = "2006/01/02"
	timeLayout = "15:04"
)

// Record is one logged work session.
type Record struct {
	Key       string    `json:"-"`
	Created   time.Time `json:"-"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Countdown string    `json:"countdown"`
	Complete  bool      `json:"complete"`
}

// Duration returns the armed countdown as a time.Duration, or zero when the
// stored text cannot be parsed.
func (r Record) Duration() time.Duration {
	c, err := clock.Parse(r.Countdown)
	if err != nil {
		return 0
	}
	return c.Total()
}

// Status is the label shown for the completion flag.
func (r Record) Status() string {
	if r.Complete {
		return "Completed"
	}
	return "Incomplete"
}

// Option configures a Log.
type Option func(*Log)

// WithNow overrides the clock used to stamp new records.
func WithNow(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// Log is an insertion-ordered collection of records. Every mutation
// rewrites the whole file. A Log is not safe for concurrent use.
type Log struct {
	path  string
	keys  []string
	byKey map[string]Record
	now   func() time.Time
}

// Open loads the log stored at path. A missing or empty file yields an
// empty log. A file that cannot be read or parsed also yields an empty,
// usable log, together with an error describing the problem. An empty
// path keeps the log in memory only.
func Open(path string, opts ...Option) (*Log, error) {
	l := &Log{
		path:  path,
		byKey: make(map[string]Record),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if path == "" {
		return l, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return l, fmt.Errorf("read records: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return l, nil
	}

	keys, byKey, err := decode(data)
	if err != nil {
		return l, fmt.Errorf("parse records %s: %w", path, err)
	}
	l.keys, l.byKey = keys, byKey
	return l, nil
}

// DefaultPath returns ~/.config/pomo/records.json
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "pomo", "records.json"), nil
}

// Path returns the backing file, or "" for an in-memory log.
func (l *Log) Path() string { return l.path }

// Append stamps a new record with the current instant and saves the log.
// On a save error the record stays in memory.
func (l *Log) Append(countdown string, complete bool) (Record, error) {
	now := l.now()
	key := now.Format(KeyLayout)
	for {
		if _, taken := l.byKey[key]; !taken {
			break
		}
		now = now.Add(time.Microsecond)
		key = now.Format(KeyLayout)
	}

	r := Record{
		Key:       key,
		Created:   now,
		Date:      now.Format(dateLayout),
		Time:      now.Format(timeLayout),
		Countdown: countdown,
		Complete:  complete,
	}
	l.keys = append(l.keys, key)
	l.byKey[key] = r

	if err := l.flush(); err != nil {
		return r, err
	}
	return r, nil
}

// Remove deletes the record with the given key and saves the log. It
// reports false, without touching the file, when no such record exists.
func (l *Log) Remove(key string) (bool, error) {
	if _, ok := l.byKey[key]; !ok {
		return false, nil
	}
	delete(l.byKey, key)
	for i, k := range l.keys {
		if k == key {
			l.keys = append(l.keys[:i], l.keys[i+1:]...)
			break
		}
	}
	return true, l.flush()
}

// Get returns the record stored under key.
func (l *Log) Get(key string) (Record, bool) {
	r, ok := l.byKey[key]
	return r, ok
}

// List returns the records in insertion order.
func (l *Log) List() []Record {
	out := make([]Record, 0, len(l.keys))
	for _, k := range l.keys {
		out = append(out, l.byKey[k])
	}
	return out
}

// Len returns the number of records.
func (l *Log) Len() int { return len(l.keys) }

func (l *Log) flush() error {
	if l.path == "" {
		return nil
	}
	data, err := encode(l.keys, l.byKey)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create records directory: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

// encode writes one JSON object with keys in log order.
func encode(keys []string, byKey map[string]Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(",")
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.MarshalIndent(byKey[k], "  ", "  ")
		if err != nil {
			return nil, err
		}
		buf.WriteString("\n  ")
		buf.Write(kb)
		buf.WriteString(": ")
		buf.Write(vb)
	}
	if len(keys) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// decode reads the object produced by encode, keeping the file's key order.
func decode(data []byte) ([]string, map[string]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var keys []string
	byKey := make(map[string]Record)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected record key, got %v", tok)
		}
		var r Record
		if err := dec.Decode(&r); err != nil {
			return nil, nil, fmt.Errorf("record %q: %w", key, err)
		}
		r.Key = key
		r.Created = parseKey(key)
		if _, dup := byKey[key]; !dup {
			keys = append(keys, key)
		}
		byKey[key] = r
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, byKey, nil
}

func parseKey(key string) time.Time {
	if t, err := time.ParseInLocation(KeyLayout, key, time.Local); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", key, time.Local); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339Nano, key); err == nil {
		return t
	}
	return time.Time{}
}
