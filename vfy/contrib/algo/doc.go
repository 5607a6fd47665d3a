// Copyright 2025 go-verify Authors
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

// Package algo provides contract-annotated sequence algorithms: maximum,
// linear search, occurrence counting, and the quantifier helpers (All,
// Any, None) the contracts are phrased with.
//
// Search absence is reported through the NotFound sentinel, never through
// an error. Reading past a sequence is excluded by precondition.
package algo
