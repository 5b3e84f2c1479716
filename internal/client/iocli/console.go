package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console реализация IO поверх произвольных потоков.
// Пароль читается без эха, если ввод это терминал.
type Console struct {
	out    io.Writer
	in     *bufio.Reader
	inFile *os.File
}

// NewStdio консоль поверх os.Stdin и os.Stdout
func NewStdio() IO {
	return NewConsole(os.Stdin, os.Stdout)
}

// NewConsole создает консоль с заданными потоками
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out: out,
		in:  bufio.NewReader(in),
	}
	if f, ok := in.(*os.File); ok {
		c.inFile = f
	}
	return c
}

func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// ReadInput печатает приглашение и читает строку без пробелов по краям.
// Последняя строка без перевода строки тоже принимается.
func (c *Console) ReadInput(prompt string) (string, error) {
	c.Printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword читает пароль. На терминале ввод не отображается.
func (c *Console) ReadPassword(prompt string) (string, error) {
	if c.inFile != nil && term.IsTerminal(int(c.inFile.Fd())) {
		c.Printf("%s", prompt)
		pw, err := term.ReadPassword(int(c.inFile.Fd()))
		c.Println()
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	// Не терминал (pipe, тесты): читаем строку как есть
	c.Printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
