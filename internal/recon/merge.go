package recon

import "strings"

// genericNamePrefix marks placeholder names minted when a document carried
// a policy number but no readable policyholder name.
const genericNamePrefix = "Customer_"

// IsGenericName reports whether a customer name is a minted placeholder
// rather than a name read off a statement.
func IsGenericName(name string) bool {
	return strings.HasPrefix(name, genericNamePrefix)
}

// MergeNames unifies two independently built policy-to-name mappings, as
// produced by running different extraction strategies over the same
// document set. The reduction is pure and order independent over the union
// of policy numbers: a human-looking name beats a placeholder, a longer
// name beats a shorter one, and ties go to the primary source.
func MergeNames(primary, secondary map[string]string) map[string]string {
	out := make(map[string]string, len(primary)+len(secondary))
	for pn, name := range primary {
		out[pn] = name
	}
	for pn, name := range secondary {
		cur, ok := out[pn]
		if !ok {
			out[pn] = name
			continue
		}
		out[pn] = preferName(cur, name)
	}
	return out
}

// preferName picks between the primary source's name and a challenger.
func preferName(primary, challenger string) string {
	pGeneric, cGeneric := IsGenericName(primary), IsGenericName(challenger)
	if pGeneric != cGeneric {
		if pGeneric {
			return challenger
		}
		return primary
	}
	if len(challenger) > len(primary) {
		return challenger
	}
	return primary
}
