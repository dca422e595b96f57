package cli

import (
	"fmt"
	"io"
	"os"
)

// Output управляет выводом CLI.
type Output struct {
	w    io.Writer // stdout для тела ответа
	errW io.Writer // stderr для сообщений
}

// NewOutput создаёт Output для stdout/stderr процесса.
func NewOutput() *Output {
	return NewOutputTo(os.Stdout, os.Stderr)
}

// NewOutputTo создаёт Output с заданными потоками.
func NewOutputTo(w, errW io.Writer) *Output {
	return &Output{w: w, errW: errW}
}

// Body выводит тело ответа как есть, без декодирования.
func (o *Output) Body(body []byte) error {
	if _, err := o.w.Write(body); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if _, err := fmt.Fprintln(o.w); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, "Error: "+msg)
}
