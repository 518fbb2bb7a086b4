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

package source

import (
	"dirpx.dev/envx/apis"
	"dirpx.dev/envx/catalog"
)

// NewCatalogSource creates an apis.Source backed by a catalog.Catalog.
func NewCatalogSource(cat *catalog.Catalog) apis.Source {
	return &catalogSource{cat: cat}
}

// catalogSource consults a provided catalog (exact-reference lookup).
type catalogSource struct {
	cat *catalog.Catalog
}

// Ensure catalogSource implements apis.Source.
var _ apis.Source = (*catalogSource)(nil)

// TryResolve looks ref up in the catalog.
func (s *catalogSource) TryResolve(ref string) (apis.Constructor, bool) {
	if s.cat == nil {
		return nil, false
	}
	return s.cat.Lookup(ref)
}
