// Package certcheck walks directories and reports on the TLS
// certificates found in them, the way `openssl x509 -noout` would.
package certcheck

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lukassup/json-dirtree/dirtree"
)

// Opts configures a certificate check walk.
type Opts struct {
	// Hidden includes dot-prefixed entries
	Hidden bool

	// ExpiredOnly binds each certificate to a bare expiry boolean
	// instead of the full property map
	ExpiredOnly bool

	// Now is the reference time for expiry checks; zero means time.Now
	Now time.Time
}

// CheckDir walks root and builds a Tree whose file leaves describe the
// certificates found there. Files that don't parse as certificates are
// left out of the tree entirely.
func CheckDir(root string, opts *Opts) (dirtree.Tree, error) {
	if opts == nil {
		opts = &Opts{}
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return checkDir(root, opts, now)
}

func checkDir(dir string, opts *Opts, now time.Time) (dirtree.Tree, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "listing directory")
	}

	tree := make(dirtree.Tree)
	for _, entry := range entries {
		name := entry.Name()
		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}

		fullPath := filepath.Join(dir, name)
		switch {
		case entry.IsDir():
			sub, err := checkDir(fullPath, opts, now)
			if err != nil {
				return nil, err
			}
			tree[name] = sub
		case entry.Type().IsRegular():
			cert, err := readCert(fullPath)
			if err != nil {
				// not a certificate, leave it out
				continue
			}
			if opts.ExpiredOnly {
				tree[name] = now.After(cert.NotAfter)
			} else {
				tree[name] = describe(cert, now)
			}
		}
	}

	return tree, nil
}

// readCert loads one PEM or DER encoded certificate
func readCert(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading certificate")
	}

	der := data
	if block, _ := pem.Decode(data); block != nil {
		if block.Type != "CERTIFICATE" {
			return nil, errors.Errorf("%s: not a certificate PEM block", path)
		}
		der = block.Bytes
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, errors.Wrap(err, "parsing certificate")
	}
	return cert, nil
}

func describe(cert *x509.Certificate, now time.Time) map[string]interface{} {
	// digest over the SubjectPublicKeyInfo, so non-RSA keys work too
	digest := sha256.Sum256(cert.RawSubjectPublicKeyInfo)

	return map[string]interface{}{
		"subject":      cert.Subject.String(),
		"issuer":       cert.Issuer.String(),
		"notBefore":    cert.NotBefore.UTC().Format(time.RFC3339),
		"notAfter":     cert.NotAfter.UTC().Format(time.RFC3339),
		"serial":       cert.SerialNumber.Text(16),
		"pubkeySHA256": hex.EncodeToString(digest[:]),
		"expired":      now.After(cert.NotAfter),
	}
}
