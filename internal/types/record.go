// Package types provides type definitions for structured data used throughout the im-creator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// InputRecord is a flat, semi-structured form-data record. Keys are stored
// under a single canonical camelCase form; snake_case aliases are folded in
// at construction time, with a non-empty camelCase value winning over its
// snake_case twin. Absent fields read as zero values, never as errors.
type InputRecord struct {
	fields map[string]any
}

// NewInputRecord builds a record from raw key/value form data. Both
// camelCase and snake_case spellings of the same logical field are accepted;
// the canonical key set is camelCase.
func NewInputRecord(raw map[string]any) *InputRecord {
	fields := make(map[string]any, len(raw))

	// First pass: canonical keys as-is.
	for key, value := range raw {
		if !strings.Contains(key, "_") {
			fields[key] = value
		}
	}

	// Second pass: fold snake_case aliases, first non-empty wins.
	for key, value := range raw {
		if !strings.Contains(key, "_") {
			continue
		}
		canonical := toCamelCase(key)
		if existing, ok := fields[canonical]; ok && !isEmptyValue(existing) {
			continue
		}
		fields[canonical] = value
	}

	return &InputRecord{fields: fields}
}

// toCamelCase converts snake_case to camelCase ("company_name" -> "companyName").
func toCamelCase(key string) string {
	parts := strings.Split(key, "_")
	var sb strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			sb.WriteString(part)
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}

// isEmptyValue reports whether a raw value counts as absent for the
// purposes of dual-casing resolution and predicates.
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// Get returns the raw value for a canonical key, or nil if absent.
func (r *InputRecord) Get(key string) any {
	if r == nil {
		return nil
	}
	return r.fields[key]
}

// Has reports whether the field is present and non-empty.
func (r *InputRecord) Has(key string) bool {
	if r == nil {
		return false
	}
	value, ok := r.fields[key]
	return ok && !isEmptyValue(value)
}

// String returns the field as a trimmed string, or "" if absent.
// Numeric values are formatted rather than dropped.
func (r *InputRecord) String(key string) string {
	value := r.Get(key)
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Float returns the field coerced to a number. Malformed or absent values
// read as (0, false); they are never an error.
func (r *InputRecord) Float(key string) (float64, bool) {
	switch v := r.Get(key).(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Bool interprets opt-in flag fields. Accepted truthy spellings are
// true, "true", "yes" and "1"; anything else is false.
func (r *InputRecord) Bool(key string) bool {
	switch v := r.Get(key).(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			return true
		}
		return false
	case float64:
		return v != 0
	default:
		return false
	}
}

// StringList returns the field as a list of strings. A []any value is
// filtered to its string members; a plain string becomes a single-element
// list. Absent fields read as nil.
func (r *InputRecord) StringList(key string) []string {
	switch v := r.Get(key).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{strings.TrimSpace(v)}
	default:
		return nil
	}
}

// Fields returns a copy of the canonical field map, suitable for
// serialization.
func (r *InputRecord) Fields() map[string]any {
	if r == nil {
		return nil
	}
	out := make(map[string]any, len(r.fields))
	for key, value := range r.fields {
		out[key] = value
	}
	return out
}

// Keys returns the canonical key set in sorted order.
func (r *InputRecord) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.fields))
	for key := range r.fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Hash returns a stable content hash of the record, suitable for cheap
// change detection between snapshots.
func (r *InputRecord) Hash() string {
	if r == nil {
		return ""
	}
	// json.Marshal emits map keys in sorted order, so the serialization
	// is stable across equivalent records.
	data, err := json.Marshal(r.fields)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CaseStudy is one client engagement story attached to the record.
type CaseStudy struct {
	Client    string `json:"client,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Challenge string `json:"challenge,omitempty"`
	Solution  string `json:"solution,omitempty"`
	Results   string `json:"results,omitempty"`
}

// CaseStudies collects case studies from the record. The structured
// caseStudies list wins; older flat cs1*/cs2* fields are the fallback.
func (r *InputRecord) CaseStudies() []CaseStudy {
	if r == nil {
		return nil
	}

	if raw, ok := r.Get("caseStudies").([]any); ok && len(raw) > 0 {
		studies := make([]CaseStudy, 0, len(raw))
		for _, item := range raw {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			study := CaseStudy{
				Client:    stringField(entry, "client"),
				Industry:  stringField(entry, "industry"),
				Challenge: stringField(entry, "challenge"),
				Solution:  stringField(entry, "solution"),
				Results:   stringField(entry, "results"),
			}
			if study != (CaseStudy{}) {
				studies = append(studies, study)
			}
		}
		if len(studies) > 0 {
			return studies
		}
	}

	// Legacy flat fields.
	var studies []CaseStudy
	for _, prefix := range []string{"cs1", "cs2"} {
		if !r.Has(prefix + "Client") {
			continue
		}
		studies = append(studies, CaseStudy{
			Client:    r.String(prefix + "Client"),
			Industry:  r.String(prefix + "Industry"),
			Challenge: r.String(prefix + "Challenge"),
			Solution:  r.String(prefix + "Solution"),
			Results:   r.String(prefix + "Results"),
		})
	}
	return studies
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
