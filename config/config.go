/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package config holds the tunable geometry constants of the layout and draw
passes as a string-keyed map, read with the same Str/Int/Bool accessor
pattern as the teacher's own configuration layer.
*/
package config

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

/*
ProductVersion is the current version of xc.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options.
*/
const (
	TabWidth     = "TabWidth"     // spaces per indentation level in the textual AST dump
	HStep        = "HStep"        // pixel distance between adjacent offset units
	VStep        = "VStep"        // pixel distance between adjacent depth levels
	NodePad      = "NodePad"      // padding added around a node's label when sizing its box
	CanvasMargin = "CanvasMargin" // margin around the whole rendered image
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	TabWidth:     2,
	HStep:        48,
	VStep:        64,
	NodePad:      8,
	CanvasMargin: 16,
}

/*
Config is the actual config which is used.
*/
var Config map[string]interface{}

/*
Initialise the config.
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
