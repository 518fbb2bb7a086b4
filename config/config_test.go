/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config_test

import (
	"testing"

	"dirpx.dev/envx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.StrictVersionOrder != config.DefaultStrictVersionOrder {
		t.Fatalf("StrictVersionOrder = %v, want %v", got.StrictVersionOrder, config.DefaultStrictVersionOrder)
	}
	if got.ListLimit != config.DefaultListLimit {
		t.Fatalf("ListLimit = %d, want %d", got.ListLimit, config.DefaultListLimit)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithStrictVersionOrder(t *testing.T) {
	c := config.NewConfig(config.WithStrictVersionOrder(true))
	if !c.StrictVersionOrder {
		t.Fatalf("StrictVersionOrder = %v, want true", c.StrictVersionOrder)
	}

	c2 := config.NewConfig(config.WithStrictVersionOrder(false))
	if c2.StrictVersionOrder {
		t.Fatalf("StrictVersionOrder = %v, want false", c2.StrictVersionOrder)
	}
}

func TestWithListLimit(t *testing.T) {
	c := config.NewConfig(config.WithListLimit(5))
	if c.ListLimit != 5 {
		t.Fatalf("ListLimit = %d, want 5", c.ListLimit)
	}

	// Negative resets to default.
	c2 := config.NewConfig(config.WithListLimit(-1))
	if c2.ListLimit != config.DefaultListLimit {
		t.Fatalf("ListLimit = %d, want default %d", c2.ListLimit, config.DefaultListLimit)
	}
}
