// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultProfileExtension = ".yaml"

// ProviderOptions configures profile provider behavior.
type ProviderOptions struct {
	// BaseTerms are merged before every profile when set.
	BaseTerms *Terms `json:"base_terms,omitempty" yaml:"base_terms,omitempty"`
	// Extension is the profile file suffix.
	// Empty value defaults to ".yaml".
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
	// EnableSymlinkEscapeCheck enables resolved-path validation to block
	// symlink/junction escapes outside provider root.
	// Default is false for lower cold-path overhead.
	EnableSymlinkEscapeCheck bool `json:"enable_symlink_escape_check,omitempty" yaml:"enable_symlink_escape_check,omitempty"`
}

// Provider loads named terms profiles from a directory and caches compiled classifiers.
//
// Profile "name" is read from "<root>/name<ext>". Provider is safe for concurrent use.
type Provider struct {
	// baseTerms are merged before profile terms, nil when unset.
	baseTerms *Terms
	// cache stores compiled classifier by profile name.
	cache map[string]*cachedClassifier
	// root is absolute provider root directory path.
	root string
	// resolvedRoot is provider root with symlinks/junctions resolved when possible.
	resolvedRoot string
	// extension is profile file suffix.
	extension string

	// mu guards cache access.
	mu sync.Mutex
	// enableSymlinkEscapeCheck enables resolved-path root boundary validation.
	enableSymlinkEscapeCheck bool
}

// cachedClassifier stores one profile classifier or a cached load error.
type cachedClassifier struct {
	classifier *Classifier
	// err stores load/parse error for deterministic repeated calls.
	err error
	// loading reports whether classifier is currently being loaded by another goroutine.
	loading bool
	// wg coordinates concurrent waiters for one load attempt.
	wg sync.WaitGroup
}

// NewProvider creates a profile provider rooted at rootDir.
func NewProvider(rootDir string, opts ProviderOptions) (*Provider, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}

	resolvedRoot := absRoot
	if opts.EnableSymlinkEscapeCheck {
		resolvedRoot, err = resolvePathOrAbs(absRoot)
		if err != nil {
			return nil, fmt.Errorf("resolve root: %w", err)
		}
	}

	ext := strings.TrimSpace(opts.Extension)
	if ext == "" {
		ext = defaultProfileExtension
	}

	var base *Terms
	if opts.BaseTerms != nil {
		merged := MergeTerms(*opts.BaseTerms)
		base = &merged
	}

	return &Provider{
		root:                     absRoot,
		resolvedRoot:             resolvedRoot,
		extension:                ext,
		baseTerms:                base,
		enableSymlinkEscapeCheck: opts.EnableSymlinkEscapeCheck,
		cache:                    make(map[string]*cachedClassifier),
	}, nil
}

// Root returns absolute provider root directory.
func (p *Provider) Root() string {
	if p == nil {
		return ""
	}

	return p.root
}

// Classifier returns cached or newly loaded classifier for one profile.
func (p *Provider) Classifier(name string) (*Classifier, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	name, err := cleanProfileName(name)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	cached, ok := p.cache[name]
	if ok {
		loading := cached.loading
		p.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		return unwrapCachedClassifier(cached)
	}

	cached = &cachedClassifier{
		loading: true,
	}
	cached.wg.Add(1)
	p.cache[name] = cached
	p.mu.Unlock()

	classifier, loadErr := p.loadAndCompileProfile(name)

	p.mu.Lock()
	cached.classifier = classifier
	cached.err = loadErr
	cached.loading = false
	cached.wg.Done()
	p.mu.Unlock()

	return classifier, loadErr
}

// Classify returns the decision for s under profile name.
func (p *Provider) Classify(name string, s string) (Decision, error) {
	c, err := p.Classifier(name)
	if err != nil {
		return Decision{}, err
	}

	return c.Classify(s), nil
}

// IsTruthy classifies s under profile name in comma-ok form.
func (p *Provider) IsTruthy(name string, s string) (value bool, ok bool, err error) {
	d, err := p.Classify(name, s)
	if err != nil {
		return false, false, err
	}

	value, ok = d.Value()
	return value, ok, nil
}

// loadAndCompileProfile loads and compiles one profile file.
func (p *Provider) loadAndCompileProfile(name string) (*Classifier, error) {
	profilePath := filepath.Join(p.root, name+p.extension)
	if p.enableSymlinkEscapeCheck {
		if _, err := os.Lstat(profilePath); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
		}

		resolved, err := p.resolveAndValidateProfilePath(profilePath)
		if err != nil {
			return nil, err
		}

		profilePath = resolved
	}

	content, err := os.ReadFile(profilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
		}

		return nil, fmt.Errorf("read %s: %w", profilePath, err)
	}

	terms, err := ParseTerms(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", profilePath, err)
	}

	if p.baseTerms != nil {
		terms = MergeTerms(*p.baseTerms, terms)
	}

	return NewClassifier(terms), nil
}

// resolveAndValidateProfilePath resolves profile path and checks it stays under root.
func (p *Provider) resolveAndValidateProfilePath(profilePath string) (string, error) {
	resolved, err := resolvePathOrAbs(profilePath)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", profilePath, err)
	}

	if !isPathWithinRoot(p.resolvedRoot, resolved) {
		return "", ErrProfilePathOutsideRoot
	}

	return resolved, nil
}

// unwrapCachedClassifier unwraps cached profile entry.
func unwrapCachedClassifier(entry *cachedClassifier) (*Classifier, error) {
	if entry == nil {
		return nil, nil
	}

	if entry.err != nil {
		return nil, entry.err
	}

	return entry.classifier, nil
}

// cleanProfileName validates and normalizes profile name.
func cleanProfileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || name == "." || name == ".." {
		return "", ErrInvalidProfileName
	}

	if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidProfileName
	}

	return name, nil
}

// resolvePathOrAbs resolves symlinks/junctions and falls back to absolute path for non-link paths.
func resolvePathOrAbs(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		return "", absErr
	}

	if os.IsNotExist(err) {
		return abs, nil
	}

	return "", err
}

// isPathWithinRoot reports whether target path is inside root path.
func isPathWithinRoot(root string, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}

	if rel == "." {
		return true
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return true
}
