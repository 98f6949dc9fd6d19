package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const permission = 0o664

type Builder struct {
	writer io.Writer
	path   string
	level  zerolog.Level
}

// Output is a built logger and the file it writes to, if any.
type Output struct {
	Logger zerolog.Logger
	File   *os.File
}

func New() *Builder {
	return &Builder{writer: os.Stdout, level: zerolog.InfoLevel}
}

func (b *Builder) FromBuffer(w io.Writer) *Builder {
	if w != nil {
		b.writer = w
	}
	return b
}

// FromPath sends the logs to a file instead; an empty path is ignored.
func (b *Builder) FromPath(path string) *Builder {
	b.path = path
	return b
}

// Level parses lvl, keeping the current level when it is empty or unknown.
func (b *Builder) Level(lvl string) *Builder {
	if l, err := zerolog.ParseLevel(strings.ToLower(lvl)); err == nil && lvl != "" {
		b.level = l
	}
	return b
}

func (b *Builder) Make() (*Output, error) {
	out := &Output{}
	w := b.writer
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		out.File = f
		w = zerolog.SyncWriter(f)
	}
	out.Logger = zerolog.New(w).Level(b.level).With().Timestamp().Logger()
	return out, nil
}

func (o *Output) Close() error {
	if o.File == nil {
		return nil
	}
	return o.File.Close()
}

var sensitiveKeys = []string{"password", "token", "apikey", "api_key", "secret", "bearer", "authorization"}

// Redact returns a copy of details with every sensitive value masked, nested maps included.
func Redact(details map[string]any) map[string]any {
	if details == nil {
		return nil
	}
	out := make(map[string]any, len(details))
	for k, v := range details {
		if isSensitive(k) {
			out[k] = "[REDACTED]"
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			v = Redact(nested)
		}
		out[k] = v
	}
	return out
}

func isSensitive(key string) bool {
	key = strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(key, s) {
			return true
		}
	}
	return false
}
