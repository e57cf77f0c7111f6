package utils

import (
	"encoding/json"
	"strings"

	"k8s.io/klog/v2"
)

// ParseStringList normalizes a multipart form field that clients send either
// as one JSON-encoded array ("[\"a\",\"b\"]") or as repeated form values.
func ParseStringList(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 {
		trimmed := strings.TrimSpace(values[0])
		if trimmed == "" {
			return []string{}, nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var list []string
			if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
				return nil, err
			}
			return list, nil
		}
	}
	return values, nil
}

func ToJSON(v any) string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		klog.Errorf("JSON 직렬화 실패: %v", err)
		return ""
	}
	return string(jsonData)
}
