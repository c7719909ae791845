package models

// SingletonID is the fixed well-known id addressing each singleton row
// (site settings, promotions, landing content).
const SingletonID = "main"

// OpeningHours is one row of the weekly hours table.
type OpeningHours struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Socials holds optional profile URLs per platform.
type Socials struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Yelp      string `json:"yelp,omitempty"`
}

// HeroContent is the home page hero block.
type HeroContent struct {
	BackgroundImage string `json:"backgroundImage"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
}

// FooterLink is a single footer navigation entry.
type FooterLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// FooterContent is the site-wide footer block.
type FooterContent struct {
	Description string       `json:"description"`
	Links       []FooterLink `json:"links"`
	Copyright   string       `json:"copyright"`
}

// SiteSettings is the singleton holding the bar's public identity. Exactly one
// live instance exists per deployment.
type SiteSettings struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Phone   string         `json:"phone"`
	Email   string         `json:"email"`
	Hours   []OpeningHours `json:"hours"`
	Socials Socials        `json:"socials"`
	Hero    HeroContent    `json:"hero"`
	Footer  FooterContent  `json:"footer"`
}

// LandingPromo controls whether visitors are redirected to the landing page.
type LandingPromo struct {
	Enabled           bool   `json:"enabled"`
	Start             string `json:"start"`
	End               string `json:"end"`
	RedirectAllRoutes bool   `json:"redirectAllRoutes"`
}

// SideBanner is the site-wide promotional banner.
type SideBanner struct {
	Enabled   bool   `json:"enabled"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Message   string `json:"message"`
	Link      string `json:"link"`
	Placement string `json:"placement"`
}

// HappyHourOffer is one entry in the happy hour offer list.
type HappyHourOffer struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
}

// HappyHour is the happy hour promotion block.
type HappyHour struct {
	Enabled     bool             `json:"enabled"`
	Title       string           `json:"title"`
	Subtitle    string           `json:"subtitle"`
	Description string           `json:"description"`
	Days        string           `json:"days"`
	TimeRange   string           `json:"timeRange"`
	Offers      []HappyHourOffer `json:"offers"`
}

// Promotions is the singleton holding all promotional toggles.
type Promotions struct {
	ID         string       `json:"id"`
	Landing    LandingPromo `json:"landing"`
	SideBanner SideBanner   `json:"sideBanner"`
	HappyHour  HappyHour    `json:"happyHour"`
}

// LandingPopup controls the landing page popup behaviour.
type LandingPopup struct {
	Enabled      bool   `json:"enabled"`
	Duration     int    `json:"duration"`
	AutoRedirect bool   `json:"autoRedirect"`
	RedirectURL  string `json:"redirectUrl"`
}

// LandingHero is the landing page hero block.
type LandingHero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage"`
	CtaText         string `json:"ctaText"`
	CtaLink         string `json:"ctaLink"`
}

// LandingFeature is one highlighted feature on the landing page.
type LandingFeature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SpecialOffer is the landing page special offer callout.
type SpecialOffer struct {
	Enabled     bool   `json:"enabled"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
}

// LandingContent is the singleton holding the landing page copy.
type LandingContent struct {
	ID           string           `json:"id"`
	Popup        LandingPopup     `json:"popup"`
	Hero         LandingHero      `json:"hero"`
	Features     []LandingFeature `json:"features"`
	SpecialOffer SpecialOffer     `json:"specialOffer"`
}

// DefaultSettings is the renderable shape returned when no settings record
// exists yet. The UI depends on every field being present.
func DefaultSettings() *SiteSettings {
	return &SiteSettings{
		ID:      SingletonID,
		Name:    "Supono's Sports Bar",
		Address: "123 Stadium Drive, Downtown, State 12345",
		Phone:   "(555) SPORT-BAR",
		Email:   "info@suponos.com",
		Hours:   []OpeningHours{},
		Socials: Socials{},
		Hero:    HeroContent{},
		Footer:  FooterContent{Links: []FooterLink{}},
	}
}

// DefaultPromotions returns the all-disabled promotions shape.
func DefaultPromotions() *Promotions {
	return &Promotions{
		ID:         SingletonID,
		Landing:    LandingPromo{},
		SideBanner: SideBanner{},
		HappyHour:  HappyHour{Offers: []HappyHourOffer{}},
	}
}

// DefaultLandingContent returns the all-disabled landing content shape.
func DefaultLandingContent() *LandingContent {
	return &LandingContent{
		ID:           SingletonID,
		Popup:        LandingPopup{Duration: 20, AutoRedirect: true},
		Hero:         LandingHero{},
		Features:     []LandingFeature{},
		SpecialOffer: SpecialOffer{},
	}
}
