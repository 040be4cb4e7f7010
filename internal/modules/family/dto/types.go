package dto

type JoinInput struct {
	Name    string
	HubAddr string
}

type SpaceOutput struct {
	Name     string
	HubAddr  string
	JoinedAt int64
}
