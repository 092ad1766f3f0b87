package advisor

// MockAdvice is returned in mock mode so the service can be demoed offline.
const MockAdvice = `1. WHERE DOES THE ACCOUNT STAND?
- Output is steady but most reach comes from a few tutorial posts.
- Bottleneck: few videos carry a save or follow CTA.
- Strength: short videos with a question hook sit in the top quartile.

2. WHAT VIDEOS SHOULD BE MADE NEXT?
- Short tutorials with a question hook and a save CTA.
- Series posts that repeat the best performing structure.

3. OUTLOOK AND HOW TO GROW (30-90 days)
- 30 days: keep save rate stable while posting three times a week.
- 60 days: push follow rate with profile visit CTAs.
- 90 days: turn the strongest format into a named series.`
