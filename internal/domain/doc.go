// Package domain contains the core model of textfilter: named text
// operations, the registry that selects them, and the error taxonomy.
//
// The domain does not depend on stdin, cobra, or any transliteration
// library. Infra/adapters plug into it through plain function values.
package domain
