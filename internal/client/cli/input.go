package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"

	"golang.org/x/term"
)

// maxEmailAttempts bounds how often GetEmail re-asks before giving up.
const maxEmailAttempts = 3

var errInvalidEmail = errors.New("invalid email address")

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText writes prompt followed by "> " and returns the next line,
// trimmed. A last line without a newline still counts; a bare EOF is an
// error.
//
//	Enter name
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n> ", prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetEmail asks for an email address until it parses as a plain address
// ("a@b.c", not "Name <a@b.c>"). The backend keys accounts by email, so a
// typo here would only come back as a generic login failure.
func GetEmail(reader *bufio.Reader, w io.Writer) (string, error) {
	for range maxEmailAttempts {
		line, err := GetSimpleText(reader, "Enter email", w)
		if err != nil {
			return "", err
		}
		if addr, err := mail.ParseAddress(line); err == nil && addr.Address == line {
			return line, nil
		}
		fmt.Fprintf(w, "%q is not a valid email address\n", line)
	}
	return "", errInvalidEmail
}

// GetPassword reads a password from the terminal without echo.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
