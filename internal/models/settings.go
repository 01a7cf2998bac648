package models

// Settings is a singleton resource, fetched with One instead of Get.
type Settings struct {
	Meta
	AutoShareRecipes bool `json:"autoShareRecipes"`
	AutoShareLists   bool `json:"autoShareLists"`
}

type SettingsUpdate struct {
	AutoShareRecipes *bool `json:"autoShareRecipes,omitempty"`
	AutoShareLists   *bool `json:"autoShareLists,omitempty"`
}
