// Package config provides configuration loading for podsite.
//
// Configuration is a flat JSON document. Three keys drive the pipeline:
//
//	{
//	    "feed_URL": "https://example.com/feed.xml",
//	    "output_dir": "/var/www/podcast",
//	    "theme_dir": "themes/plain"
//	}
//
// Any additional keys are passed through to templates untouched as the
// "config" context value, so themes can rely on site-specific settings
// (base URL, social handles, ...) without core involvement.
//
// # Loading
//
//	cfg, err := config.Load("podcast.json")
//	if err != nil {
//	    // bad path or invalid JSON
//	}
//
// Load applies no defaults apart from the structural templates directory;
// required keys are checked by Validate just before the pipeline runs.
package config
