package cjkwrap

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrInvalidLang reports a lang option that is not a BCP 47 tag.
var ErrInvalidLang = errors.New("invalid language tag")

const (
	defaultBeforeClass = "before"
	defaultAfterClass  = "after"
)

// Options is the merged configuration of wrapping and rendering.
type Options struct {
	// BeforeClass is the class added to a wrap when it needs leading space.
	BeforeClass string
	// AfterClass is the class added to a wrap when it needs trailing space.
	AfterClass string
	// Lang is emitted as the lang attribute of every wrap when non-empty.
	Lang string
	// WrapAll processes blocks that contain Latin text but no ideographs.
	WrapAll bool
	// Unsafe lets the HTML renderer emit raw HTML and dangerous link
	// targets verbatim.
	Unsafe bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the option defaults.
func DefaultOptions() Options {
	return Options{
		BeforeClass: defaultBeforeClass,
		AfterClass:  defaultAfterClass,
	}
}

// NewOptions merges opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithBeforeClass sets the class name for leading spacing. An empty name
// drops the class.
func WithBeforeClass(name string) Option {
	return func(o *Options) {
		o.BeforeClass = name
	}
}

// WithAfterClass sets the class name for trailing spacing. An empty name
// drops the class.
func WithAfterClass(name string) Option {
	return func(o *Options) {
		o.AfterClass = name
	}
}

// WithLang sets the lang attribute emitted on every wrap.
func WithLang(tag string) Option {
	return func(o *Options) {
		o.Lang = tag
	}
}

// WithWrapAll enables wrapping in blocks that contain no ideographs.
func WithWrapAll(enabled bool) Option {
	return func(o *Options) {
		o.WrapAll = enabled
	}
}

// WithUnsafe controls whether raw HTML and javascript:, vbscript:, file:
// and non-image data: URLs reach HTML output. Front matter cannot set it.
func WithUnsafe(enabled bool) Option {
	return func(o *Options) {
		o.Unsafe = enabled
	}
}

// Normalize validates o and returns it with Lang in canonical form.
func (o Options) Normalize() (Options, error) {
	if o.Lang == "" {
		return o, nil
	}
	tag, err := language.Parse(o.Lang)
	if err != nil {
		return o, fmt.Errorf("%w %q: %v", ErrInvalidLang, o.Lang, err)
	}
	o.Lang = tag.String()
	return o, nil
}
