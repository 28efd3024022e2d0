// Package terminal implements the interactive surface of the client:
// prompting the operator for input and rendering results as tables.
package terminal

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompt reads operator input from stdin. Passwords are read without
// echo when stdin is a terminal.
type Prompt struct {
	reader *bufio.Reader
}

func NewPrompt() *Prompt {
	return &Prompt{reader: bufio.NewReader(os.Stdin)}
}

func (p *Prompt) readLine(message string) (string, bool) {
	fmt.Print(message)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (p *Prompt) readPassword(message string) (string, bool) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.readLine(message)
	}
	fmt.Print(message)
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(raw)), true
}

func (p *Prompt) Credentials() (string, string, bool) {
	login, ok := p.readLine("login: ")
	if !ok || login == "" {
		return "", "", false
	}
	password, ok := p.readPassword("password: ")
	if !ok {
		return "", "", false
	}
	return login, password, true
}

// ChooseOption lists the options one-based and returns the zero-based
// index of whatever number the operator typed. Range checking is left
// to the caller.
func (p *Prompt) ChooseOption(message string, options []string) (int, bool) {
	fmt.Println(message)
	for i, option := range options {
		fmt.Printf("%d) %s\n", i+1, option)
	}
	line, ok := p.readLine("> ")
	if !ok || line == "" {
		return 0, false
	}
	choice, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return choice - 1, true
}
