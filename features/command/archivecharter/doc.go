// Package archivecharter implements the Archive Charter use case.
//
// Archiving is the terminal transition. Only fully settled or cancelled
// charters may leave the working set, and nothing comes back out.
package archivecharter
