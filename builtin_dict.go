// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	_ "embed"
	"fmt"

	"github.com/google/licensecheck"
)

// builtinProfile is the bundled dictionary profile used when no -profile
// flag is given. It is decoded by hunspell.LoadProfile in newDictionary.
//
//go:embed testdata/en_test.toml
var builtinProfile []byte

//go:embed testdata/LICENSE
var builtinProfileLicense []byte

// minLicenseMatch is the lowest licensecheck match percentage accepted for
// the bundled profile's license text at startup.
const minLicenseMatch = 90.0

func init() {
	cov := licensecheck.Scan(builtinProfileLicense)
	if cov.Percent < minLicenseMatch {
		panic(fmt.Sprintf("embedded dictionary license unrecognized: %.1f%% match", cov.Percent))
	}
}
