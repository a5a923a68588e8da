// Package types defines the persisted document entities shared across the
// store, analysis, and workflow packages. JSON field names match the
// persisted partition layout exactly; rendering code depends on them.
package types

// JobPreferences holds a user's optional job search preferences.
type JobPreferences struct {
	Titles     []string `json:"titles"`
	Locations  []string `json:"locations"`
	Industries []string `json:"industries"`
}

// UserProfile is the singleton per-installation profile record.
type UserProfile struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	ProfilePicture string          `json:"profilePicture,omitempty"`
	JobPreferences *JobPreferences `json:"jobPreferences,omitempty"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

// PersonalInfo is the contact block nested inside a CV.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// WorkExperience is a single position entry in a CV.
// IsCurrent is the authoritative flag for an ongoing position; when it is
// set, the stored EndDate is cleared and display derives "Present".
type WorkExperience struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	IsCurrent   bool   `json:"isCurrent"`
	Description string `json:"description"`
}

// DisplayEndDate returns the end date to present to the user.
func (w WorkExperience) DisplayEndDate() string {
	if w.IsCurrent {
		return "Present"
	}
	return w.EndDate
}

// Education is a single study entry in a CV. IsCurrent semantics match
// WorkExperience.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	IsCurrent   bool   `json:"isCurrent"`
	Description string `json:"description,omitempty"`
}

// DisplayEndDate returns the end date to present to the user.
func (e Education) DisplayEndDate() string {
	if e.IsCurrent {
		return "Present"
	}
	return e.EndDate
}

// Certification is an optional credential entry in a CV.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Language is an optional language proficiency entry in a CV.
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// CV is a structured curriculum vitae document.
type CV struct {
	ID                  string           `json:"id"`
	UserID              string           `json:"userId"`
	Name                string           `json:"name"`
	PersonalInfo        PersonalInfo     `json:"personalInfo"`
	ProfessionalSummary string           `json:"professionalSummary"`
	WorkExperience      []WorkExperience `json:"workExperience"`
	Education           []Education      `json:"education"`
	Skills              []string         `json:"skills"`
	Certifications      []Certification  `json:"certifications,omitempty"`
	Languages           []Language       `json:"languages,omitempty"`
	TemplateID          string           `json:"templateId"`
	CreatedAt           string           `json:"createdAt"`
	UpdatedAt           string           `json:"updatedAt"`
}

// Normalize applies the canonical current-position rule: an entry marked
// current never stores an explicit end date.
func (c *CV) Normalize() {
	for i := range c.WorkExperience {
		if c.WorkExperience[i].IsCurrent {
			c.WorkExperience[i].EndDate = ""
		}
	}
	for i := range c.Education {
		if c.Education[i].IsCurrent {
			c.Education[i].EndDate = ""
		}
	}
}

// CoverLetter is a generated or hand-edited application letter. CVID is a
// weak reference; it is not validated to exist.
type CoverLetter struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	CVID           string `json:"cvId"`
	Name           string `json:"name"`
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
	Content        string `json:"content"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ReviewFeedback is the structured feedback block of a CV review.
type ReviewFeedback struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  string   `json:"suggestions"`
}

// CVReview is an immutable, append-only AI review of a CV. CVID may be a
// synthetic reference for uploaded-but-unsaved documents.
type CVReview struct {
	ID        string         `json:"id"`
	CVID      string         `json:"cvId"`
	Score     int            `json:"score"`
	Feedback  ReviewFeedback `json:"feedback"`
	CreatedAt string         `json:"createdAt"`
}

// JobMatch is an append-only AI comparison of a CV against a job
// description.
type JobMatch struct {
	ID              string   `json:"id"`
	CVID            string   `json:"cvId"`
	CVFileName      string   `json:"cvFileName,omitempty"`
	JobDescription  string   `json:"jobDescription"`
	MatchScore      float64  `json:"matchScore"`
	MatchingSkills  []string `json:"matchingSkills,omitempty"`
	MissingSkills   []string `json:"missingSkills"`
	KeywordsToAdd   []string `json:"keywordsToAdd,omitempty"`
	Suggestions     string   `json:"suggestions"`
	Recommendations []string `json:"recommendations,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}
