package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotRole names the two slot families of the old flat naming scheme.
type SlotRole string

const (
	RolePrimary   SlotRole = "primary"
	RoleSecondary SlotRole = "secondary"
)

// SlotKey is the parsed form of a slot name. Current names follow
// "group{G}_{N}"; saved files from older versions still carry
// "primary_{N}" and "secondary_{N}" keys, which parse as legacy keys
// and are rewritten during migration. Parsing happens once at load,
// so nothing downstream does ad hoc digit surgery on key strings.
type SlotKey struct {
	Legacy bool
	Role   SlotRole // legacy keys only
	Group  int      // 1-based, current keys only
	Item   int      // 1-based
}

// GroupSlot builds the key for item n of group g (both 1-based).
func GroupSlot(g, n int) SlotKey {
	return SlotKey{Group: g, Item: n}
}

// LegacySlot builds an old-scheme key.
func LegacySlot(role SlotRole, n int) SlotKey {
	return SlotKey{Legacy: true, Role: role, Item: n}
}

// String renders the key in its wire form.
func (k SlotKey) String() string {
	if k.Legacy {
		return fmt.Sprintf("%s_%d", k.Role, k.Item)
	}
	return fmt.Sprintf("group%d_%d", k.Group, k.Item)
}

// Migrated maps a legacy key onto the group scheme: primary slots
// become group 1, secondary slots group 2. Current keys pass through.
func (k SlotKey) Migrated() SlotKey {
	if !k.Legacy {
		return k
	}
	g := 1
	if k.Role == RoleSecondary {
		g = 2
	}
	return GroupSlot(g, k.Item)
}

// firstDigitRun extracts the first contiguous run of digits from s.
func firstDigitRun(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseSlotKey parses a slot name string. It accepts the current
// "group{G}_{N}" form and the legacy "primary*"/"secondary*" forms,
// where the item index is the first digit run after the role name.
// Anything else reports false.
func ParseSlotKey(s string) (SlotKey, bool) {
	if rest, ok := strings.CutPrefix(s, "group"); ok {
		gStr, nStr, found := strings.Cut(rest, "_")
		if !found {
			return SlotKey{}, false
		}
		g, err := strconv.Atoi(gStr)
		if err != nil || g < 1 {
			return SlotKey{}, false
		}
		n, err := strconv.Atoi(nStr)
		if err != nil || n < 1 {
			return SlotKey{}, false
		}
		return GroupSlot(g, n), true
	}

	for _, role := range []SlotRole{RolePrimary, RoleSecondary} {
		rest, ok := strings.CutPrefix(s, string(role))
		if !ok {
			continue
		}
		n, ok := firstDigitRun(rest)
		if !ok || n < 1 {
			return SlotKey{}, false
		}
		return LegacySlot(role, n), true
	}
	return SlotKey{}, false
}
