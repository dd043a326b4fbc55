package firestore

// ValidDocID is exported for testing
var ValidDocID = validDocID
