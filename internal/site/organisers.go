// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package site

import "communitysite/internal/models"

// Organisers returns the organising team in display order.
func Organisers() []models.Organiser {
	return []models.Organiser{
		{
			Name:        "James Davenport",
			Twitter:     models.Profile{Username: "@JD_aka_Techy", Link: "https://twitter.com/JD_aka_Techy"},
			GitHub:      models.Profile{Username: "JD_aka_Techy", Link: "https://github.com/JD-aka-Techy"},
			Description: `FCC Alum, Full stack JS &amp; C#, poor ukulele player and source of many donuts <span role="img" aria-label="donut">🍩</span>`,
			Languages:   []string{"javascript", "node", "react"},
		},
		{
			Name:        "Adam Collier",
			Twitter:     models.Profile{Username: "@collieradam", Link: "https://twitter.com/collieradam"},
			GitHub:      models.Profile{Username: "Adam-Collier", Link: "https://github.com/Adam-Collier"},
			Description: `Design/Developer guy @Missguided. Side project initiator. Always making stuff. Currently 82% tea <span role="img" aria-label="peace">✌️</span>`,
			Languages:   []string{"html", "css", "javascript", "node", "react"},
		},
		{
			Name:        "Pete Daily",
			Twitter:     models.Profile{Username: "@peterdaily", Link: "https://twitter.com/peterdaily"},
			GitHub:      models.Profile{Username: "thepeted", Link: "https://github.com/thepeted"},
			Description: `Bit of a geek. Self taught Front end web developer. Long suffering Stockport County fan.`,
			Languages:   []string{"html", "css", "javascript", "angular", "node", "react"},
		},
		{
			Name:        "Fey Ijaware",
			Twitter:     models.Profile{Username: "@feyagape", Link: "https://twitter.com/feyagape"},
			GitHub:      models.Profile{Username: "FeyAgape", Link: "https://github.com/FeyAgape"},
			Description: `Self-taught developer and senior developer @dwpdigital. Founder of CodeandStuff &amp; CodePossible.`,
			Languages:   []string{"javascript", "node", "react"},
		},
	}
}
