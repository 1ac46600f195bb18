// Package validation applies field-level rules to public form input before
// any workflow runs. All violations are collected and reported together.
package validation

import (
	"html"
	"net/mail"
	"regexp"
	"strings"
)

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	subjectMinLen = 5
	subjectMaxLen = 200
	messageMinLen = 10
	messageMaxLen = 2000
	sourceMaxLen  = 100
)

var nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// FieldError describes one violated rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the aggregated set of field violations for one request.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// ContactInput is the raw contact form payload before validation.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// NewsletterInput is the raw newsletter subscription payload before validation.
type NewsletterInput struct {
	Email  string
	Source string
}

// Contact validates and normalizes a contact form submission.
// On success the returned input is trimmed, the email lower-cased and the
// message HTML-escaped; on failure every violated field is listed.
func Contact(in ContactInput) (ContactInput, Errors) {
	var errs Errors

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs = append(errs, FieldError{"name", "Name is required"})
	case len([]rune(name)) < nameMinLen || len([]rune(name)) > nameMaxLen:
		errs = append(errs, FieldError{"name", "Name must be between 2 and 100 characters"})
	case !nameRe.MatchString(name):
		errs = append(errs, FieldError{"name", "Name can only contain letters and spaces"})
	}

	email, emailErrs := Email(in.Email)
	errs = append(errs, emailErrs...)

	subject := strings.TrimSpace(in.Subject)
	switch {
	case subject == "":
		errs = append(errs, FieldError{"subject", "Subject is required"})
	case len([]rune(subject)) < subjectMinLen || len([]rune(subject)) > subjectMaxLen:
		errs = append(errs, FieldError{"subject", "Subject must be between 5 and 200 characters"})
	}

	message := strings.TrimSpace(in.Message)
	switch {
	case message == "":
		errs = append(errs, FieldError{"message", "Message is required"})
	case len([]rune(message)) < messageMinLen || len([]rune(message)) > messageMaxLen:
		errs = append(errs, FieldError{"message", "Message must be between 10 and 2000 characters"})
	}

	if errs != nil {
		return ContactInput{}, errs
	}
	return ContactInput{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: html.EscapeString(message),
	}, nil
}

// Newsletter validates and normalizes a newsletter subscription payload.
// An empty source defaults to "website".
func Newsletter(in NewsletterInput) (NewsletterInput, Errors) {
	var errs Errors

	email, emailErrs := Email(in.Email)
	errs = append(errs, emailErrs...)

	source := strings.TrimSpace(in.Source)
	if len([]rune(source)) > sourceMaxLen {
		errs = append(errs, FieldError{"source", "Source must be less than 100 characters"})
	}
	if source == "" {
		source = "website"
	}

	if errs != nil {
		return NewsletterInput{}, errs
	}
	return NewsletterInput{Email: email, Source: source}, nil
}

// Email validates a single email address and returns its normalized
// (trimmed, lower-cased) form.
func Email(raw string) (string, Errors) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", Errors{{"email", "Email is required"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", Errors{{"email", "Please provide a valid email address"}}
	}
	return strings.ToLower(email), nil
}
