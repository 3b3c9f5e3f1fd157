// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diffable

import "znkr.io/diffable/internal/config"

// Option configures the behavior of snapshots.
type Option = config.Option

// PerSectionItems scopes item de-duplication to the owning section instead of the whole
// snapshot. With this option the same item identity may appear in different sections; appending
// it twice to the same section is still a no-op. The default scope rejects an identity that is
// already present anywhere in the snapshot.
func PerSectionItems() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Scope = config.ScopeSection
		return config.PerSectionItems
	}
}
