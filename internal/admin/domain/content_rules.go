// Package domain holds the content invariants enforced before anything
// reaches the persistence gateway: title deduplication, pricing order and
// hard-limit uniqueness.
package domain

import (
	"fmt"
	"strings"

	publicdomain "github.com/damemahigan/site-services/api/internal/public/domain"
)

// NormalizeTitle is the case-insensitive comparison key used for duplicate
// detection.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// DuplicatePractices returns, per group of practices sharing a normalized
// title, every member after the first in iteration order. The survivor is
// whichever the store listed first; only the count of removals is a firm
// invariant.
func DuplicatePractices(practices []publicdomain.Practice) []publicdomain.Practice {
	seen := make(map[string]struct{}, len(practices))
	var duplicates []publicdomain.Practice
	for _, practice := range practices {
		key := NormalizeTitle(practice.Title)
		if _, ok := seen[key]; ok {
			duplicates = append(duplicates, practice)
			continue
		}
		seen[key] = struct{}{}
	}
	return duplicates
}

// ReorderPositions maps each listed service id to its new position, taken
// from its index in orderedIDs. Every id must reference a known service; a
// service absent from orderedIDs keeps its current position.
func ReorderPositions(services []publicdomain.Service, orderedIDs []string) (map[string]int, error) {
	known := make(map[string]struct{}, len(services))
	for _, service := range services {
		known[service.ID] = struct{}{}
	}

	positions := make(map[string]int, len(orderedIDs))
	for index, id := range orderedIDs {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("unknown service id %q", id)
		}
		if _, ok := positions[id]; ok {
			return nil, fmt.Errorf("service id %q listed twice", id)
		}
		positions[id] = index
	}
	return positions, nil
}

// ExcludedNameTaken reports whether name collides case-insensitively with
// an existing hard limit.
func ExcludedNameTaken(existing []publicdomain.ExcludedPractice, name string) bool {
	for _, practice := range existing {
		if strings.EqualFold(strings.TrimSpace(practice.Name), strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}
