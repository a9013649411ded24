package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Well-known keys of the persisted key space. Every collection the app
// tracks lives under exactly one of these keys as a single JSON value,
// except the scalar keys which hold raw strings.
const (
	KeyFolders  = "folders"
	KeyPhotos   = "photos"
	KeyNotes    = "notes"
	KeyLiked    = "liked"
	KeySelected = "sel"
	KeyTab      = "selectedTabIndex"
	KeyMood     = "moodMode"
	KeyChat     = "lovechat"
	KeyMemories = "calMemories"
)

// KV defines the persistence contract for the memories app: a flat
// string-keyed map where each value is replaced atomically as a whole.
// Reads never fail; absent or unreadable values fall back to defaults.
type KV interface {
	Get(key string) ([]byte, bool)
	SetJSON(key string, v interface{}) error
	GetString(key string, fallback string) string
	SetString(key, value string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a KV backed by diskv using the provided config.
func Load(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: flatTransform,
		InverseTransform:  flatInverse,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key string) ([]byte, bool) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, false
	}
	return val, true
}

func (p *persistence) SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) GetString(key string, fallback string) string {
	val, ok := p.Get(key)
	if !ok {
		return fallback
	}
	s := strings.TrimSpace(string(val))
	if s == "" || s == "null" || s == "undefined" {
		return fallback
	}
	return s
}

func (p *persistence) SetString(key, value string) error {
	return p.d.Write(key, []byte(value))
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	return keys
}

// JSON reads and decodes the value stored under key. A missing key, a
// literal null/undefined marker, or malformed JSON all resolve to
// fallback; a read can never surface an error to the caller.
func JSON[T any](kv KV, key string, fallback T) T {
	data, ok := kv.Get(key)
	if !ok {
		return fallback
	}
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" || s == "undefined" {
		return fallback
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback
	}
	return v
}

func flatTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func flatInverse(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
