package post

// CreatePostRequest represents request to create a forum post
type CreatePostRequest struct {
	Title string   `json:"title" validate:"required,min=3,max=200"`
	Body  string   `json:"body" validate:"required,min=1,max=10000"`
	Tags  []string `json:"tags" validate:"omitempty,max=5,dive,min=1,max=40"`
}

// ListPostsFilter for paginating the forum feed
type ListPostsFilter struct {
	Tag    string `json:"tag,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}
