// Package applog bitácoras de texto append-only que escriben los jobs programados.
package applog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File bitácora en disco. Cada Append abre, escribe y cierra, así el archivo se puede
// rotar o borrar entre ejecuciones.
type File struct {
	path string
	mu   sync.Mutex
}

// Open no toca el disco; el archivo se crea en el primer Append.
func Open(path string) *File {
	return &File{path: path}
}

// Path ruta del archivo.
func (f *File) Path() string { return f.path }

// Append agrega text tal cual (sin salto de línea implícito).
func (f *File) Append(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("applog: crear directorio %s: %w", dir, err)
		}
	}
	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("applog: abrir %s: %w", f.path, err)
	}
	if _, err := fh.WriteString(text); err != nil {
		fh.Close()
		return fmt.Errorf("applog: escribir %s: %w", f.path, err)
	}
	return fh.Close()
}

