package plans

// PlanRequest carries everything the generator needs to produce a plan.
// Energy targets come from the latest computed metrics of the user.
type PlanRequest struct {
	UserID      string   `json:"userId"`
	Kind        PlanKind `json:"kind"`
	Days        int      `json:"days"`
	Goal        string   `json:"goal"`
	Calories    int      `json:"calories"`
	ProteinG    int      `json:"proteinG"`
	FatsG       int      `json:"fatsG"`
	CarbsG      int      `json:"carbsG"`
	Preferences []string `json:"preferences,omitempty"`
}
