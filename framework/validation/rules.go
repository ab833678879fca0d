package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	urlPattern       = regexp.MustCompile(`^https?://`)
	alphaPattern     = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaNumPattern  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaDashPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// checkRule evaluates one rule against a concrete attribute and, on failure,
// returns the built-in message (already formatted with the displayable name).
func (v *Validator) checkRule(rule, param string, t target) (bool, string) {
	name := v.displayName(t.path, t.origKey)
	value := t.value

	switch rule {
	case "required":
		if !t.present || isEmptyValue(value) {
			return false, fmt.Sprintf("The %s field is required.", name)
		}

	case "string":
		if _, ok := value.(string); !ok {
			return false, fmt.Sprintf("The %s must be a string.", name)
		}

	case "array":
		if _, ok := value.([]any); !ok {
			return false, fmt.Sprintf("The %s must be an array.", name)
		}

	case "numeric":
		if _, ok := toFloat(value); !ok {
			return false, fmt.Sprintf("The %s must be a number.", name)
		}

	case "integer":
		if !isInteger(value) {
			return false, fmt.Sprintf("The %s must be an integer.", name)
		}

	case "boolean":
		if !isBooleanish(value) {
			return false, fmt.Sprintf("The %s field must be true or false.", name)
		}

	case "email":
		s, ok := value.(string)
		if !ok {
			return false, fmt.Sprintf("The %s must be a valid email address.", name)
		}
		if _, err := mail.ParseAddress(s); err != nil {
			return false, fmt.Sprintf("The %s must be a valid email address.", name)
		}

	case "url":
		s, ok := value.(string)
		if !ok || !urlPattern.MatchString(s) {
			return false, fmt.Sprintf("The %s must be a valid URL.", name)
		}

	case "min":
		n, _ := strconv.ParseFloat(param, 64)
		if size, ok := sizeOf(value); !ok || size < n {
			return false, sizeMessage(value, name,
				fmt.Sprintf("must be at least %s characters", param),
				fmt.Sprintf("must have at least %s items", param),
				fmt.Sprintf("must be at least %s", param))
		}

	case "max":
		n, _ := strconv.ParseFloat(param, 64)
		if size, ok := sizeOf(value); !ok || size > n {
			return false, sizeMessage(value, name,
				fmt.Sprintf("may not be greater than %s characters", param),
				fmt.Sprintf("may not have more than %s items", param),
				fmt.Sprintf("may not be greater than %s", param))
		}

	case "size":
		n, _ := strconv.ParseFloat(param, 64)
		if size, ok := sizeOf(value); !ok || size != n {
			return false, sizeMessage(value, name,
				fmt.Sprintf("must be %s characters", param),
				fmt.Sprintf("must contain %s items", param),
				fmt.Sprintf("must be %s", param))
		}

	case "between":
		lo, hi, ok := parseRange(param)
		if !ok {
			break
		}
		if size, sok := sizeOf(value); !sok || size < lo || size > hi {
			return false, sizeMessage(value, name,
				fmt.Sprintf("must be between %v and %v characters", lo, hi),
				fmt.Sprintf("must have between %v and %v items", lo, hi),
				fmt.Sprintf("must be between %v and %v", lo, hi))
		}

	case "in":
		if !inList(value, param) {
			return false, fmt.Sprintf("The selected %s is invalid.", name)
		}

	case "not_in":
		if inList(value, param) {
			return false, fmt.Sprintf("The selected %s is invalid.", name)
		}

	case "confirmed":
		other, _ := v.getValue(t.path + "_confirmation")
		if stringify(other) != stringify(value) {
			return false, fmt.Sprintf("The %s confirmation does not match.", name)
		}

	case "same":
		other, _ := v.getValue(param)
		if stringify(other) != stringify(value) {
			return false, fmt.Sprintf("The %s and %s must match.", name, param)
		}

	case "different":
		other, ok := v.getValue(param)
		if ok && stringify(other) == stringify(value) {
			return false, fmt.Sprintf("The %s and %s must be different.", name, param)
		}

	case "gt", "gte", "lt", "lte":
		f, fok := toFloat(value)
		threshold, _ := strconv.ParseFloat(param, 64)
		ok := fok
		if fok {
			switch rule {
			case "gt":
				ok = f > threshold
			case "gte":
				ok = f >= threshold
			case "lt":
				ok = f < threshold
			case "lte":
				ok = f <= threshold
			}
		}
		if !ok {
			return false, fmt.Sprintf("The %s must be %s %s.", name, comparisonPhrase(rule), param)
		}

	case "alpha":
		if s, ok := value.(string); !ok || !alphaPattern.MatchString(s) {
			return false, fmt.Sprintf("The %s may only contain letters.", name)
		}

	case "alpha_num":
		if s, ok := value.(string); !ok || !alphaNumPattern.MatchString(s) {
			return false, fmt.Sprintf("The %s may only contain letters and numbers.", name)
		}

	case "alpha_dash":
		if s, ok := value.(string); !ok || !alphaDashPattern.MatchString(s) {
			return false, fmt.Sprintf("The %s may only contain letters, numbers, dashes and underscores.", name)
		}

	case "regex":
		re, err := regexp.Compile(param)
		s, ok := value.(string)
		if err != nil || !ok || !re.MatchString(s) {
			return false, fmt.Sprintf("The %s format is invalid.", name)
		}
	}

	return true, ""
}

func comparisonPhrase(rule string) string {
	switch rule {
	case "gt":
		return "greater than"
	case "gte":
		return "greater than or equal to"
	case "lt":
		return "less than"
	default:
		return "less than or equal to"
	}
}

// sizeMessage picks the message variant matching the value's kind, mirroring
// Laravel's string/array/numeric message families.
func sizeMessage(value any, name, strMsg, seqMsg, numMsg string) string {
	switch value.(type) {
	case string:
		return fmt.Sprintf("The %s %s.", name, strMsg)
	case []any, map[string]any:
		return fmt.Sprintf("The %s %s.", name, seqMsg)
	default:
		return fmt.Sprintf("The %s %s.", name, numMsg)
	}
}

// ── value helpers ────────────────────────────────────────────────────────────

// isEmptyValue reports whether a value counts as "not provided" for the
// required and nullable rules.
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

func isInteger(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return v == float64(int64(v))
	case float32:
		return float64(v) == float64(int64(v))
	case string:
		_, err := strconv.Atoi(v)
		return err == nil
	}
	return false
}

func isBooleanish(value any) bool {
	switch v := value.(type) {
	case bool:
		return true
	case int:
		return v == 0 || v == 1
	case string:
		switch strings.ToLower(v) {
		case "true", "false", "1", "0", "yes", "no":
			return true
		}
	}
	return false
}

// sizeOf returns the magnitude compared by min/max/size/between: the value
// itself for numbers, the rune count for strings, the length for sequences
// and maps.
func sizeOf(value any) (float64, bool) {
	switch v := value.(type) {
	case string:
		return float64(utf8.RuneCountInString(v)), true
	case []any:
		return float64(len(v)), true
	case map[string]any:
		return float64(len(v)), true
	}
	return toFloat(value)
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

func inList(value any, param string) bool {
	s := stringify(value)
	for _, candidate := range strings.Split(param, ",") {
		if strings.TrimSpace(candidate) == s {
			return true
		}
	}
	return false
}

func parseRange(param string) (float64, float64, bool) {
	parts := strings.SplitN(param, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	hi, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	return lo, hi, err1 == nil && err2 == nil
}
