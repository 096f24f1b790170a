package domain

import "fmt"

// CountingID formats the sequential identifier for the ordinal-th child of
// parentID, e.g. CountingID(KindProject, "cl00001", 3) is "cl00001_pr00003".
// Clients have no parent and carry only the tag and ordinal.
func CountingID(kind Kind, parentID string, ordinal int) string {
	suffix := fmt.Sprintf("%s%05d", kind.Tag(), ordinal)
	if parentID == "" {
		return suffix
	}
	return parentID + "_" + suffix
}

// TimestampID formats the opaque identifier built from a millisecond
// timestamp and a random number below 1000.
func TimestampID(kind Kind, parentID string, millis int64, random int) string {
	if parentID == "" {
		return fmt.Sprintf("%s_%d_%03d", kind.Tag(), millis, random)
	}
	return fmt.Sprintf("%s_%s_%d_%03d", kind.Tag(), parentID, millis, random)
}
