package fileops

// Delete removes the filesystem entry at the File's path. Directories must
// be empty, matching the platform remove semantics.
//
// Failure is soft: the diagnostic goes to the File's logger and false is
// returned, so the result must always be checked. Exactly one attempt is
// made, there are no retries.
func (f *File) Delete() bool {
	if err := f.fs.Remove(f.path); err != nil {
		f.log.Error(f.path + " was not deleted.")
		return false
	}
	return true
}
