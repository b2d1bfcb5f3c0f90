package datetime

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadKeywordFile reads a JSON or YAML keyword table from disk.
func LoadKeywordFile(path string) (*KeywordTable, error) {
	if path == "" {
		return nil, errors.New("datetime: no keyword file configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datetime: read %s: %w", path, err)
	}

	table, err := ParseKeywordTable(path, data)
	if err != nil {
		return nil, fmt.Errorf("datetime: decode %s: %w", path, err)
	}
	return table, nil
}

// ParseKeywordTable decodes data, choosing the format from name's extension.
//
//	en:
//	  single: {today: today, tom: tomorrow}
//	  range:  {lw: last_week}
func ParseKeywordTable(name string, data []byte) (*KeywordTable, error) {
	raw, err := decodeKeywordFile(name, data)
	if err != nil {
		return nil, err
	}
	return NewKeywordTable(raw)
}

func decodeKeywordFile(path string, data []byte) (map[string]LocaleKeywords, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeKeywordsJSON(path, data)
	case ".yaml", ".yml":
		return decodeKeywordsYAML(path, data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeKeywordsJSON(path string, data []byte) (map[string]LocaleKeywords, error) {
	var raw map[string]LocaleKeywords
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedKeywords, path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s: empty keyword table", ErrMalformedKeywords, path)
	}
	return raw, nil
}

func decodeKeywordsYAML(path string, data []byte) (map[string]LocaleKeywords, error) {
	var raw map[string]LocaleKeywords
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: yaml parse error: %v", ErrMalformedKeywords, path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s: empty keyword table", ErrMalformedKeywords, path)
	}
	return raw, nil
}
