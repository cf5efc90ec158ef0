package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)

	c.Println("Header", "🚀 Instalando")
	c.Blank()
	c.Printf("", "   %s setup", "coder")
	c.Errorf("Error", "❌ Error: %s", "falló")

	assert.Equal(t, "🚀 Instalando\n\n   coder setup\n", out.String())
	assert.Equal(t, "❌ Error: falló\n", errOut.String())
}

func TestConsoleMultiLineIsNotPadded(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)

	c.Errorf("Error", "❌ Error: %s", "decoding failed:\n* 'setup.timeout' invalid duration \"soon\"\n* x")
	c.Println("Header", "uno\ndos largo")

	assert.Equal(t, "❌ Error: decoding failed:\n* 'setup.timeout' invalid duration \"soon\"\n* x\n", errOut.String())
	assert.Equal(t, "uno\ndos largo\n", out.String())
}
