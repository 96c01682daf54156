// File: utils/constants.go
package utils

// SnapshotKeyPrefix is the prefix used for Redis schedule snapshot keys.
const SnapshotKeyPrefix = "schedule:snapshot:"
