package batch

// Package batch runs a list of URLs as one sequential download batch.
// Each URL is classified, fetched, and reported through an event channel
// the interface layer consumes. A pause is inserted between downloads.
