package models

const (
	PostFlagLandscape = "Landscape"
	PostFlagPortrait  = "Portrait"
	PostFlagMacro     = "Macro"
	PostFlagStreet    = "Street"
	PostFlagTravel    = "Travel"
)

// PostFlagAll is the list filter value that keeps every post.
const PostFlagAll = "All"

var PostFlagVocabulary = []string{
	PostFlagLandscape,
	PostFlagPortrait,
	PostFlagMacro,
	PostFlagStreet,
	PostFlagTravel,
}
