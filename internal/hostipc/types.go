package hostipc

// ProjectRequest asks the host for its active project context.
type ProjectRequest struct{}

// ProjectResponse carries the host's active project information. Path is
// the project file or directory; empty means no project is open.
type ProjectResponse struct {
	Path      string `json:"path"`
	BoardName string `json:"board_name"`
}
