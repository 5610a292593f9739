package validator

import (
	"encoding/base64"
	"encoding/hex"
	"net"
	"net/mail"
	"regexp"
	"strings"
)

var (
	// RFC 1123 label: letters, digits and inner hyphens, 1-63 chars
	hostnameLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
)

// Email requires a single addr-spec such as "user@example.com". Display names
// ("Bob <bob@example.com>") are rejected.
func Email() Rule[string] {
	return WhenPresent(isEmail, "validation.email", "Must be a valid email address", nil)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	localPart, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// Hostname requires an RFC 1123 host name.
func Hostname() Rule[string] {
	return WhenPresent(isHostname, "validation.hostname", "Must be a valid hostname", nil)
}

func isHostname(value string) bool {
	value = strings.TrimSuffix(value, ".")
	if value == "" || len(value) > 253 {
		return false
	}
	for label := range strings.SplitSeq(value, ".") {
		if !hostnameLabelRegex.MatchString(label) {
			return false
		}
	}
	return true
}

// IPv4 requires a dotted-quad IPv4 address.
func IPv4() Rule[string] {
	return WhenPresent(func(value string) bool {
		if strings.Contains(value, ":") {
			return false
		}
		ip := net.ParseIP(value)
		return ip != nil && ip.To4() != nil
	}, "validation.ipv4", "Must be a valid IPv4 address", nil)
}

// IPv6 requires an IPv6 address; IPv4-mapped forms like "::ffff:1.2.3.4" pass.
func IPv6() Rule[string] {
	return WhenPresent(func(value string) bool {
		return strings.Contains(value, ":") && net.ParseIP(value) != nil
	}, "validation.ipv6", "Must be a valid IPv6 address", nil)
}

// Base64 requires standard, padded base64.
func Base64() Rule[string] {
	return WhenPresent(func(value string) bool {
		_, err := base64.StdEncoding.DecodeString(value)
		return err == nil
	}, "validation.base64", "Must be a valid base64 string", nil)
}

// HexBinary requires an even-length string of hex digits.
func HexBinary() Rule[string] {
	return WhenPresent(func(value string) bool {
		_, err := hex.DecodeString(value)
		return err == nil
	}, "validation.hex_binary", "Must be a valid hex binary string", nil)
}
