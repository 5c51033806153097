package utils

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email format")
	}

	return nil
}

// ValidateLink checks an optional http(s) link (persona profiles, websites)
func ValidateLink(link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil
	}

	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return errors.New("invalid link, expected an http(s) URL")
	}

	return nil
}

func ValidateRequired(field, fieldName string) error {
	if strings.TrimSpace(field) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

func ValidateLength(field, fieldName string, min, max int) error {
	length := len(strings.TrimSpace(field))
	if length < min {
		return fmt.Errorf("%s must be at least %d characters", fieldName, min)
	}
	if length > max {
		return fmt.Errorf("%s must be at most %d characters", fieldName, max)
	}
	return nil
}
