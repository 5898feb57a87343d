package messages

// JoinRequest is sent by a viewer after connecting to start receiving snapshots.
type JoinRequest struct {
	Version    string
	PlayerName string
}
