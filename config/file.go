package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/signadot/nodeconf/codec"
	"github.com/signadot/nodeconf/debug"
	"github.com/signadot/nodeconf/ir"
	"github.com/signadot/nodeconf/xmldoc"
)

// File is a store backed by an XML document in a stream, usually a file.
// The root element must be named after RootName and, unless
// IgnoreVersion is given, carry version FormatVersion.
type File struct {
	*Store
	rw   io.ReadWriteSeeker
	doc  *xmldoc.Document
	opts *options
}

type truncater interface {
	Truncate(size int64) error
}

// OpenFile opens the configuration file at path. A missing file is
// created from an empty template when the Writable option is given;
// otherwise the returned File is invalid.
func OpenFile(path string, reg *codec.Registry, opts ...Option) (*File, error) {
	o := optsFrom(opts...)
	f := &File{Store: NewStore(nil, reg), opts: o}
	f.writable = o.writable
	flag := os.O_RDONLY
	if o.writable {
		flag = os.O_RDWR
	}
	osf, err := os.OpenFile(path, flag, 0)
	switch {
	case err == nil:
		f.rw = osf
		return f, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	case !o.writable:
		debug.Warnf("configuration %s does not exist", path)
		return f, nil
	}
	osf, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	f.rw = osf
	if err := f.create(); err != nil {
		osf.Close()
		return nil, err
	}
	return f, nil
}

// OpenStream uses rw as the backend of a File. An empty stream is filled
// with the template when the Writable option is given. Saves shrink the
// stream only if rw has a Truncate(int64) error method, as *os.File does.
func OpenStream(rw io.ReadWriteSeeker, reg *codec.Registry, opts ...Option) (*File, error) {
	o := optsFrom(opts...)
	f := &File{Store: NewStore(nil, reg), rw: rw, opts: o}
	f.writable = o.writable
	if !o.writable {
		return f, nil
	}
	size, err := rw.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		if err := f.create(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *File) create() error {
	doc := xmldoc.New(ir.New(f.opts.rootName).WithAttr(AttrVersion, FormatVersion))
	return f.write(doc)
}

// Load reads the document and its settings. A document which cannot be
// parsed or has the wrong root element or version makes f invalid and
// yields ErrInvalidConfig.
func (f *File) Load() error {
	f.valid = false
	f.root = nil
	f.doc = nil
	f.Store.Load()
	if f.rw == nil {
		return fmt.Errorf("%w: no such file", ErrInvalidConfig)
	}
	if _, err := f.rw.Seek(0, io.SeekStart); err != nil {
		return err
	}
	doc, err := xmldoc.Read(f.rw)
	if err != nil {
		debug.Warnf("configuration could not be loaded: %v", err)
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if doc.Root.Name != f.opts.rootName {
		debug.Warnf("the document contains no configuration: root element %q", doc.Root.Name)
		return fmt.Errorf("%w: root element %q, want %q", ErrInvalidConfig, doc.Root.Name, f.opts.rootName)
	}
	if v := doc.Root.AttrValue(AttrVersion); !f.opts.ignoreVersion && v != FormatVersion {
		debug.Errorf("format version %q is not supported", v)
		return fmt.Errorf("%w: version %q, want %q", ErrInvalidConfig, v, FormatVersion)
	}
	f.doc = doc
	f.root = doc.Root
	f.valid = true
	f.Store.Load()
	return nil
}

// Save merges the settings into the document and rewrites the stream.
// The stream is rewritten even when some settings fail to encode; their
// errors are returned.
func (f *File) Save() error {
	saveErr := f.Store.Save()
	if !f.valid || !f.writable {
		return saveErr
	}
	if err := f.write(f.doc); err != nil {
		return errors.Join(saveErr, err)
	}
	return saveErr
}

func (f *File) write(doc *xmldoc.Document) error {
	if _, err := f.rw.Seek(0, io.SeekStart); err != nil {
		return err
	}
	n, err := doc.WriteTo(f.rw)
	if err != nil {
		return err
	}
	if t, ok := f.rw.(truncater); ok {
		return t.Truncate(n)
	}
	return nil
}

// Document returns the loaded document, or nil.
func (f *File) Document() *xmldoc.Document {
	return f.doc
}

// Close closes the stream if it is an io.Closer.
func (f *File) Close() error {
	rw := f.rw
	f.rw = nil
	if c, ok := rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
