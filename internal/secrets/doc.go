// Package secrets resolves the directory that holds machine-specific secrets.
//
// A host is either a development machine or not. Development machines keep
// their secrets in a shared data directory (conventionally under a personal
// cloud-storage root); every other machine keeps them next to the executable.
// Both live in a subdirectory named "Secrets".
//
// # Classification
//
// Whether the current host is a development machine is decided by a list
// file, "Development Machines.txt" by default, holding one host name per
// line. The list itself lives in a secrets directory, which is exactly the
// thing being decided. Service breaks the cycle by probing both candidate
// directories directly from their raw formulas (see Locations), never through
// ResolveSecretsDirectory:
//
//  1. <executable dir>/Secrets/<list file>
//  2. <development data dir>/Secrets/<list file>
//
// The first file found is read and searched for the machine name as an exact,
// case-sensitive, whole-line match. When neither file exists the machine is
// not a development machine.
//
// The answer is cached for the life of the Service and shared by every list
// file name. ResetIsDevelopmentMachine clears it; OverrideIsDevelopmentMachine
// replaces it.
//
// # Overrides
//
// SecretsDirectoryOverride forces ResolveSecretsDirectory to a fixed path and
// skips classification entirely. Resetting it hands the decision back to the
// classifier.
package secrets
