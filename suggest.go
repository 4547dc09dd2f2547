/*
Copyright 2024 Blnk Finance Authors.

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

package ledgerlite

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// SuggestAccountID returns the registered id closest to id by edit distance,
// provided it is within the configured maximum. Ties go to the account
// created first.
func (l *Ledger) SuggestAccountID(id string) (string, bool) {
	if !l.suggestionsEnabled {
		return "", false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	needle := []rune(strings.ToLower(strings.TrimSpace(id)))
	best, bestDistance := "", l.suggestionDistance+1
	for _, candidate := range l.order {
		distance := levenshtein.DistanceForStrings(needle, []rune(strings.ToLower(candidate)), levenshtein.DefaultOptions)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	if best == "" || best == id {
		return "", false
	}
	return best, true
}
