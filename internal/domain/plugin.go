package domain

type PluginLog struct {
	Level        string `json:"level"`
	Timestamp    string `json:"timestamp"`
	Message      string `json:"message"`
	RequestID    string `json:"tf_req_id"`
	RPC          string `json:"tf_rpc"`
	ResourceType string `json:"tf_resource_type"`
	RawJSON      string `json:"raw_json"`
}

type PluginRequest struct {
	Logs    []PluginLog       `json:"logs"`
	Options map[string]string `json:"options"`
}

type PluginItem struct {
	Key    string   `json:"key"`
	Value  string   `json:"value"`
	Count  int      `json:"count"`
	LogIds []string `json:"log_ids"`
}

type PluginResult struct {
	Results []PluginItem `json:"results"`
	Summary string       `json:"summary"`
}

type PluginInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
