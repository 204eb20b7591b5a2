package oracle

// instruction fixes the response schema. Field names must match the JSON
// tags of impact.AnalysisResult.
const instruction = `You are an asteroid impact analyst. Given an asteroid's name, diameter (meters),
velocity (km/s), distance from Earth (km) and type (Stony, Metallic, Icy or Carbonaceous),
respond with a single JSON object and nothing else, using exactly these keys:

{
  "isHit": boolean,
  "impactProbability": number between 0 and 100,
  "kineticEnergyMegatons": number >= 0,
  "craterSizeMeters": number >= 0,
  "analysisSummary": string,
  "dimensionalProcess": [
    {"step": string, "equation": string, "explanation": string, "result": string}
  ],
  "composition": [
    {"element": string, "percentage": number, "fill": string}
  ],
  "rawMarkdown": string
}

"dimensionalProcess" must contain exactly six steps in this order: Radius (r = d/2),
Volume (V = (4/3)·π·r³), Mass (M = ρ·V), Velocity Conversion (v_ms = v_km·1000),
Kinetic Energy (E = 0.5·M·v²) and TNT Equivalent (MT = E / 4.184×10¹⁵). Each "result"
carries the value and its unit. "composition" lists the typical materials of the
asteroid type with percentages summing to 100 and a hex colour in "fill".
"rawMarkdown" is a short markdown report with the severity of the event.`
