package entity

// PlaceCategory is a nearby-place search category.
type PlaceCategory string

const (
	PlaceVeterinary PlaceCategory = "veterinary_care"
	PlacePetStore   PlaceCategory = "pet_store"
	PlacePark       PlaceCategory = "park"
)

// Place is a point of interest returned by the places lookup service.
type Place struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Rating         float64 `json:"rating"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distanceMeters"`
}

// ChatMessage is one line of the assistant conversation.
type ChatMessage struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// ChatStep is the position in the scripted assistant flow.
type ChatStep int

const (
	ChatChooseTopic ChatStep = iota + 1
	ChatChoosePetType
	ChatAsk
)

// Conversation is the state of one assistant session.
type Conversation struct {
	Step     ChatStep      `json:"step"`
	Topic    string        `json:"topic"`
	PetType  string        `json:"petType"`
	Messages []ChatMessage `json:"messages"`
}
